package verctl

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pelletier/go-toml/v2/unstable"
)

var utf8BOM = []byte("\xEF\xBB\xBF")

// packageLayout records where the [package] table of a document sits, in
// byte offsets of the full document.
type packageLayout struct {
	found     bool   // a [package] header exists
	headerEnd int    // end of the header line, before its line break
	entries   bool   // the table has at least one key/value
	indent    string // leading whitespace of the first entry
	lastEnd   int    // lower bound for the end of the last entry
	tableEnd  int    // start of the line holding the next table header, or len(data)

	version     bool // package.version is a plain key
	dotted      bool // package.version is written as a dotted key
	versionFrom int
	versionTo   int
	editable    bool // the version value is a string or other scalar
}

// locatePackage walks the top-level expressions of data and records the
// positions SetPackageVersion needs.
func locatePackage(data []byte) (packageLayout, error) {
	l := packageLayout{tableEnd: len(data)}

	base := 0
	if bytes.HasPrefix(data, utf8BOM) {
		base = len(utf8BOM)
	}
	src := data[base:]

	var p unstable.Parser
	p.Reset(src)
	inPackage := false
	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table, unstable.ArrayTable:
			start := keyStart(e)
			if inPackage {
				l.tableEnd = base + lineStart(src, start)
				return l, nil
			}
			if e.Kind == unstable.Table && equalKey(e, "package") {
				inPackage, l.found = true, true
				l.headerEnd = base + lineEnd(src, start)
			}
		case unstable.KeyValue:
			if !inPackage {
				continue
			}
			start := keyStart(e)
			if !l.entries {
				l.entries = true
				l.indent = string(src[lineStart(src, start):start])
			}
			l.lastEnd = base + start

			v := e.Value()
			from, to, ok := scalarRange(&p, v)
			if ok && v.Kind == unstable.String {
				l.lastEnd = base + to
			}

			key := keyPath(e)
			if key[0] != "version" {
				continue
			}
			if len(key) > 1 {
				l.dotted = true
				continue
			}
			l.version, l.editable = true, ok
			l.versionFrom, l.versionTo = base+from, base+to
		}
	}
	return l, p.Error()
}

// insertAt returns the offset where a new entry goes: after the last entry of
// the table, ahead of blank lines and comment lines preceding the next table.
func (l packageLayout) insertAt(data []byte) int {
	if !l.entries {
		return l.headerEnd
	}
	end := l.tableEnd
	for {
		end = len(bytes.TrimRight(data[:end], " \t\r\n"))
		if end < l.lastEnd {
			end = l.lastEnd
			break
		}
		start := bytes.LastIndexByte(data[:end], '\n') + 1
		if start <= l.lastEnd || !bytes.HasPrefix(bytes.TrimLeft(data[start:end], " \t"), []byte("#")) {
			break
		}
		end = start
	}
	return lineEnd(data, end)
}

func keyStart(n *unstable.Node) int {
	it := n.Key()
	it.Next()
	return int(it.Node().Raw.Offset)
}

func keyPath(n *unstable.Node) []string {
	var path []string
	it := n.Key()
	for it.Next() {
		path = append(path, string(it.Node().Data))
	}
	return path
}

func equalKey(n *unstable.Node, name string) bool {
	key := keyPath(n)
	return len(key) == 1 && key[0] == name
}

// scalarRange returns the source span of a string, number, or boolean value.
func scalarRange(p *unstable.Parser, v *unstable.Node) (from, to int, ok bool) {
	var r unstable.Range
	switch v.Kind {
	case unstable.String:
		r = v.Raw
	case unstable.Integer, unstable.Float, unstable.Bool:
		r = v.Raw
		if r.Length == 0 {
			r = p.Range(v.Data)
		}
	default:
		return 0, 0, false
	}
	return int(r.Offset), int(r.Offset + r.Length), true
}

func lineStart(data []byte, off int) int {
	return bytes.LastIndexByte(data[:off], '\n') + 1
}

// lineEnd returns the offset of the line break ending the line at off, or
// len(data) on the last line.
func lineEnd(data []byte, off int) int {
	i := bytes.IndexByte(data[off:], '\n')
	if i < 0 {
		return len(data)
	}
	end := off + i
	if end > 0 && data[end-1] == '\r' {
		end--
	}
	return end
}

// tomlString renders s as a TOML basic string.
func tomlString(s string) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]string{"v": s}); err != nil {
		return "", err
	}
	_, quoted, _ := strings.Cut(strings.TrimSpace(buf.String()), " = ")
	return quoted, nil
}
