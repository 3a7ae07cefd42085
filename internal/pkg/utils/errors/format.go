package errors

import (
	"strings"
	"unicode"
)

const (
	Indent = "  "
	Bullet = "- "
)

type FormatOption func(c *formatConfig)

type formatConfig struct {
	asSentences bool
	withUnwrap  bool
}

// FormatAsSentences capitalizes each message and ends it with a dot.
func FormatAsSentences() FormatOption {
	return func(c *formatConfig) {
		c.asSentences = true
	}
}

// FormatWithUnwrap prints also the wrapped causes of each error.
func FormatWithUnwrap() FormatOption {
	return func(c *formatConfig) {
		c.withUnwrap = true
	}
}

// Format converts the error to a multi-line string, nested errors are printed as bullet lists.
func Format(err error, opts ...FormatOption) string {
	if err == nil {
		return ""
	}

	c := formatConfig{}
	for _, o := range opts {
		o(&c)
	}

	var out strings.Builder
	// nolint: errorlint
	switch v := err.(type) {
	case *multiError:
		c.writeList(&out, 0, v.WrappedErrors())
	case *nestedError:
		out.WriteString(c.message(v.main.Error(), true))
		out.WriteString("\n")
		c.writeList(&out, 0, v.sub.WrappedErrors())
	default:
		c.writeItem(&out, 0, err)
	}
	return strings.TrimRight(out.String(), "\n")
}

func (c formatConfig) writeList(out *strings.Builder, level int, errs []error) {
	for _, err := range errs {
		out.WriteString(strings.Repeat(Indent, level))
		out.WriteString(Bullet)
		c.writeItem(out, level, err)
		out.WriteString("\n")
	}
}

func (c formatConfig) writeItem(out *strings.Builder, level int, err error) {
	// nolint: errorlint
	switch v := err.(type) {
	case *multiError:
		out.WriteString("\n")
		c.writeList(out, level+1, v.WrappedErrors())
		trimNewLine(out)
	case *nestedError:
		out.WriteString(c.message(v.main.Error(), true))
		out.WriteString("\n")
		c.writeList(out, level+1, v.sub.WrappedErrors())
		trimNewLine(out)
	case *wrappedError:
		if c.withUnwrap {
			out.WriteString(c.message(v.msg, true))
			out.WriteString("\n")
			c.writeList(out, level+1, []error{v.cause})
			trimNewLine(out)
		} else {
			out.WriteString(c.message(v.msg, false))
		}
	default:
		out.WriteString(c.message(err.Error(), false))
	}
}

func (c formatConfig) message(msg string, hasChildren bool) string {
	msg = strings.TrimSpace(msg)
	if c.asSentences && msg != "" {
		r := []rune(msg)
		r[0] = unicode.ToUpper(r[0])
		msg = string(r)
		if !hasChildren && !strings.ContainsAny(msg[len(msg)-1:], ".!?:") {
			msg += "."
		}
	}
	if hasChildren {
		msg = strings.TrimRight(msg, ":") + ":"
	}
	return msg
}

func trimNewLine(out *strings.Builder) {
	str := strings.TrimRight(out.String(), "\n")
	out.Reset()
	out.WriteString(str)
}
