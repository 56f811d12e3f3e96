package types

import (
	"encoding/json"
	"fmt"
)

// BlockType is the closed tag that tells a renderer how to interpret the
// content of a Block.
type BlockType string

const (
	BlockText  BlockType = "text"
	BlockTable BlockType = "table"
	BlockChart BlockType = "chart"
	BlockJSON  BlockType = "json"
)

// Block is the unit of agent output: a titled, tagged piece of content.
// Exactly one payload field is set, selected by Type. Renderers switch on
// Type and can treat the dispatch as exhaustive.
type Block struct {
	Title string    `json:"title"`
	Type  BlockType `json:"type"`

	Text  string     `json:"-"`
	Table *Table     `json:"-"`
	Chart *ChartSpec `json:"-"`
	JSON  any        `json:"-"`
}

// NewTextBlock creates a text block.
func NewTextBlock(title, text string) Block {
	return Block{Title: title, Type: BlockText, Text: text}
}

// NewTableBlock creates a table block.
func NewTableBlock(title string, table *Table) Block {
	return Block{Title: title, Type: BlockTable, Table: table}
}

// NewChartBlock creates a chart block.
func NewChartBlock(title string, chart *ChartSpec) Block {
	return Block{Title: title, Type: BlockChart, Chart: chart}
}

// NewJSONBlock creates a block carrying an arbitrary JSON-serializable value.
func NewJSONBlock(title string, v any) Block {
	return Block{Title: title, Type: BlockJSON, JSON: v}
}

// Content returns the payload selected by Type.
func (b Block) Content() any {
	switch b.Type {
	case BlockText:
		return b.Text
	case BlockTable:
		return b.Table
	case BlockChart:
		return b.Chart
	case BlockJSON:
		return b.JSON
	default:
		return nil
	}
}

// MarshalJSON serializes the block as {title, type, content} so the wire
// shape matches what renderers expect regardless of the payload kind.
func (b Block) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title   string    `json:"title"`
		Type    BlockType `json:"type"`
		Content any       `json:"content"`
	}{Title: b.Title, Type: b.Type, Content: b.Content()})
}

// UnmarshalJSON restores a block from the {title, type, content} wire shape.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title   string          `json:"title"`
		Type    BlockType       `json:"type"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Title = raw.Title
	b.Type = raw.Type
	switch raw.Type {
	case BlockText:
		return json.Unmarshal(raw.Content, &b.Text)
	case BlockTable:
		b.Table = &Table{}
		return json.Unmarshal(raw.Content, b.Table)
	case BlockChart:
		b.Chart = &ChartSpec{}
		return json.Unmarshal(raw.Content, b.Chart)
	case BlockJSON:
		return json.Unmarshal(raw.Content, &b.JSON)
	default:
		return fmt.Errorf("unknown block type %q", raw.Type)
	}
}
