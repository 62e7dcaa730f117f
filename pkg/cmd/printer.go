package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/SEEK-Jobs/repoinv/pkg/yaml"
)

// ResultPrinter is an interface for writing data returned by a command.
type ResultPrinter interface {
	Print(v interface{}) error
}

// TableData is implemented by results that can be printed as a table.
type TableData interface {
	Header() []string
	Records() [][]string
}

// NoOpResultPrinter writes nothing.
type NoOpResultPrinter struct{}

// NewNoOpResultPrinter returns a new ResultPrinter that doesn't write anything.
func NewNoOpResultPrinter() ResultPrinter {
	return &NoOpResultPrinter{}
}

// Print implements ResultPrinter
func (p *NoOpResultPrinter) Print(v interface{}) error {
	return nil
}

// JSONResultPrinter writes data in JSON format.
type JSONResultPrinter struct {
	writer io.Writer
}

// NewJSONResultPrinter returns a new ResultPrinter that outputs JSON.
func NewJSONResultPrinter(writer io.Writer) ResultPrinter {
	return &JSONResultPrinter{writer: writer}
}

// Print implements ResultPrinter
func (p *JSONResultPrinter) Print(v interface{}) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(p.writer, string(buf))
	return err
}

// YAMLResultPrinter writes data in YAML format.
type YAMLResultPrinter struct {
	writer io.Writer
}

// NewYAMLResultPrinter returns a new ResultPrinter that outputs YAML.
func NewYAMLResultPrinter(writer io.Writer) ResultPrinter {
	return &YAMLResultPrinter{writer: writer}
}

// Print implements ResultPrinter
func (p *YAMLResultPrinter) Print(v interface{}) error {
	buf, err := yaml.NewCodec().Encode(v)
	if err != nil {
		return err
	}

	_, err = p.writer.Write(buf)
	return err
}

// TableResultPrinter writes data as a text table.
type TableResultPrinter struct {
	writer io.Writer
}

// NewTableResultPrinter returns a new ResultPrinter that outputs text tables.
func NewTableResultPrinter(writer io.Writer) ResultPrinter {
	return &TableResultPrinter{writer: writer}
}

// Print implements ResultPrinter. v must implement TableData.
func (p *TableResultPrinter) Print(v interface{}) error {
	data, ok := v.(TableData)
	if !ok {
		return fmt.Errorf("%T cannot be printed as a table", v)
	}

	table := tablewriter.NewWriter(p.writer)
	table.SetHeader(data.Header())
	table.SetAutoWrapText(false)
	table.AppendBulk(data.Records())
	table.Render()

	return nil
}
