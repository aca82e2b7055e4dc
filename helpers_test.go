package tmx_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

func bytesReader(data []byte) io.Reader { return bytes.NewReader(data) }

func parseDocument(t *testing.T, data []byte) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(data))
	return doc
}
