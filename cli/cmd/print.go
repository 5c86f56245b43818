package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/denv/lang"
)

// defaultIndent replaces a negative --indent.
const defaultIndent = 2

// Print writes the resolved dotenv variables in file order.
type Print struct {
	Format string `arg:"" default:"env" enum:"env,json,yaml" help:"Output format (${enum})." optional:""`
	Indent int    `default:"2" help:"Indentation of json and yaml output; 0 selects compact (json) or flow (yaml) style." short:"i"`
	Export bool   `help:"Prefix env output with 'export'." short:"x"`
}

// Run executes the print command.
func (p *Print) Run(ctx context.Context) error {
	ns, _, err := sourceFrom(ctx).read(ctx)
	if err != nil {
		return err
	}

	return p.write(ctx, stdout(ctx), ns)
}

func (p *Print) write(ctx context.Context, w io.Writer, ns *lang.Namespace) error {
	var (
		out []byte
		err error
	)

	indent := p.Indent
	if indent < 0 {
		indent = defaultIndent
	}

	switch p.Format {
	case "json":
		out, err = marshalJSON(ns, indent)
	case "yaml":
		out, err = marshalYAML(ctx, ns, indent)
	default:
		out = marshalEnv(ns, p.Export)
	}

	if err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", p.Format))
	}

	_, err = w.Write(out)

	return err
}

// marshalEnv formats ns as KEY='VALUE' lines that read back unchanged.
func marshalEnv(ns *lang.Namespace, export bool) []byte {
	var buf bytes.Buffer

	for key, value := range ns.All() {
		if export {
			buf.WriteString("export ")
		}

		fmt.Fprintf(&buf, "%s=%s\n", key, quoteSingle(value))
	}

	return buf.Bytes()
}

// quoteSingle wraps s in single quotes, closing the quote around each
// embedded single quote and escaping it.
func quoteSingle(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// object marshals a Namespace as a JSON object with keys in file order.
type object struct{ ns *lang.Namespace }

// MarshalJSON implements [json.Marshaler].
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	first := true

	for key, value := range o.ns.All() {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func marshalJSON(ns *lang.Namespace, indent int) ([]byte, error) {
	var (
		out []byte
		err error
	)

	if indent > 0 {
		out, err = json.MarshalIndent(object{ns}, "", strings.Repeat(" ", indent))
	} else {
		out, err = json.Marshal(object{ns})
	}

	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}

func marshalYAML(ctx context.Context, ns *lang.Namespace, indent int) ([]byte, error) {
	flow := indent <= 0

	items := make(yaml.MapSlice, 0, ns.Len())
	for key, value := range ns.All() {
		var v any = value
		if flow && strings.ContainsAny(value, "\r\n") {
			// A block scalar cannot appear inside a flow mapping.
			v = doubleQuoted(value)
		}

		items = append(items, yaml.MapItem{Key: key, Value: v})
	}

	var opts []yaml.EncodeOption
	if flow {
		opts = append(opts, yaml.Flow(true))
	} else {
		opts = append(opts, yaml.Indent(indent))
	}

	return yaml.MarshalContext(ctx, items, opts...)
}

// doubleQuoted is a string encoded as a double-quoted YAML scalar.
type doubleQuoted string

// MarshalYAML implements [yaml.BytesMarshaler].
func (s doubleQuoted) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}
