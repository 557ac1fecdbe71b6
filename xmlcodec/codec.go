// Package xmlcodec reads and writes documents as data-contract XML: the
// root element is named after the document type in the model namespace and
// every property is an element named after its field.
package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/pkg/errors"

	cda "github.com/gofhir/cda"
	"github.com/gofhir/cda/document"
)

// ErrUnknownRoot is returned when the root element does not name a
// supported document type.
var ErrUnknownRoot = errors.New("unknown document root element")

// Serialize returns the indented XML form of doc with an XML declaration.
func Serialize(doc document.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the XML form of doc to w.
func Encode(w io.Writer, doc document.Document) error {
	if doc == nil {
		return errors.New("nil document")
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Wrap(err, "write xml header")
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrapf(err, "encode %s", doc.DocumentType())
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Wrap(err, "write xml")
	}
	return nil
}

// Detect returns the document type named by the root element of data.
func Detect(data []byte) (cda.DocumentType, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", errors.Wrap(ErrUnknownRoot, "no root element")
		}
		if err != nil {
			return "", errors.Wrap(err, "read root element")
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		dt := cda.DocumentType(start.Name.Local)
		if !dt.IsValid() || (start.Name.Space != "" && start.Name.Space != document.Namespace) {
			return "", errors.Wrapf(ErrUnknownRoot, "%s", start.Name.Local)
		}
		return dt, nil
	}
}

// Deserialize reads a document of whichever type its root element names.
func Deserialize(data []byte) (document.Document, error) {
	dt, err := Detect(data)
	if err != nil {
		return nil, err
	}
	return DeserializeAs(data, dt)
}

// DeserializeAs reads a document of type dt. Properties absent from the
// XML are left nil or zero.
func DeserializeAs(data []byte, dt cda.DocumentType) (document.Document, error) {
	doc, err := empty(dt)
	if err != nil {
		return nil, err
	}
	if err := xml.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", dt)
	}
	return doc, nil
}

// empty returns a zero-valued document of type dt. The document
// constructors pre-allocate parts which must not survive decoding.
func empty(dt cda.DocumentType) (document.Document, error) {
	proto, err := document.New(dt)
	if err != nil {
		return nil, err
	}
	return reflect.New(reflect.TypeOf(proto).Elem()).Interface().(document.Document), nil
}

// SaveFile writes doc to path, creating parent directories.
func SaveFile(path string, doc document.Document) error {
	data, err := Serialize(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write %s", path)
}

// LoadFile reads a document from path.
func LoadFile(path string) (document.Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	doc, err := Deserialize(data)
	return doc, errors.Wrapf(err, "load %s", path)
}
