package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ResultDataElementID is the id of the script element a hosting page embeds
// its result set in
const ResultDataElementID = "resultData"

type wireGroup struct {
	Name *string           `json:"name"`
	Data []json.RawMessage `json:"data"`
}

type wireRecord struct {
	Year   *int     `json:"year"`
	Weight *float64 `json:"weight"`
	ID     *string  `json:"id"`
}

// DecodeResultSet reads a JSON result set. Both a list of series objects and
// a single series object are accepted. A record with a missing or mistyped
// field marks its group invalid instead of failing the whole decode. A JSON
// null decodes to a nil result set; use DecodeInput to tell it apart.
func DecodeResultSet(r io.Reader) (RawResultSet, error) {
	in, err := DecodeInput(r)
	if err != nil {
		return nil, err
	}
	set, _ := in.ResultSet()
	return set, nil
}

// DecodeInput reads a JSON result set like DecodeResultSet. An empty document
// or a top-level null is the absent input.
func DecodeInput(r io.Reader) (Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Absent(), fmt.Errorf("failed to read result data: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Absent(), nil
	}

	var groups []wireGroup
	if data[0] == '{' {
		var single wireGroup
		if err := json.Unmarshal(data, &single); err != nil {
			return Absent(), fmt.Errorf("failed to parse result data: %w", err)
		}
		groups = []wireGroup{single}
	} else if err := json.Unmarshal(data, &groups); err != nil {
		return Absent(), fmt.Errorf("failed to parse result data: %w", err)
	}

	set := make(RawResultSet, 0, len(groups))
	for _, wg := range groups {
		set = append(set, wg.decode())
	}
	return Present(set), nil
}

func (wg wireGroup) decode() SeriesGroup {
	group := SeriesGroup{Records: make([]RawRecord, 0, len(wg.Data))}
	if wg.Name == nil {
		group.invalid = &InvalidRecordError{Index: -1, Field: "name"}
		return group
	}
	group.Name = *wg.Name

	for i, raw := range wg.Data {
		var wr wireRecord
		if err := json.Unmarshal(raw, &wr); err != nil {
			group.invalid = &InvalidRecordError{Series: group.Name, Index: i, Field: "record"}
			return group
		}
		switch {
		case wr.Year == nil:
			group.invalid = &InvalidRecordError{Series: group.Name, Index: i, Field: "year"}
		case wr.Weight == nil:
			group.invalid = &InvalidRecordError{Series: group.Name, Index: i, Field: "weight"}
		case wr.ID == nil, *wr.ID == "":
			group.invalid = &InvalidRecordError{Series: group.Name, Index: i, Field: "id"}
		}
		if group.invalid != nil {
			return group
		}
		group.Records = append(group.Records, RawRecord{Year: *wr.Year, Weight: *wr.Weight, DocumentID: *wr.ID})
	}
	return group
}

// ExtractResultSet reads an HTML hosting page and decodes the result set
// embedded in its resultData script element. A page without that element is
// the absent input.
func ExtractResultSet(r io.Reader) (Input, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Absent(), fmt.Errorf("failed to parse hosting page: %w", err)
	}

	node := findElementByID(doc, ResultDataElementID)
	if node == nil {
		return Absent(), nil
	}

	var text strings.Builder
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		}
	}
	return DecodeInput(strings.NewReader(text.String()))
}

func findElementByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElementByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// LoadFile loads the host's result set from path. HTML files are treated as
// hosting pages, anything else as JSON. An empty path is the absent input.
func LoadFile(path string) (Input, error) {
	if path == "" {
		return Absent(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Absent(), fmt.Errorf("failed to open result data: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ExtractResultSet(f)
	default:
		return DecodeInput(f)
	}
}
