package emit

import (
	"bytes"
	"strings"

	"github.com/born-ml/opcoverage/internal/classify"
)

// indented mirrors raw_ostream::indent followed by a write.
func indented(buf *bytes.Buffer, n int, s string) {
	buf.WriteString(strings.Repeat(" ", n))
	buf.WriteString(s)
}

func renderCPP(sets []classify.ClassSet) []byte {
	var buf bytes.Buffer
	for _, set := range sets {
		indented(&buf, 0, "const std::set<std::string> &"+set.Class.String()+"() {\n")
		indented(&buf, 2, "static const std::set<std::string> * result =\n")
		indented(&buf, 4, "new std::set<std::string>({\n")
		for _, op := range set.Ops {
			indented(&buf, 6, "\""+op+"\",\n")
		}
		// The closing brace and return share a line in the consumed layout.
		indented(&buf, 4, "});")
		indented(&buf, 2, "return *result;\n")
		indented(&buf, 0, "}\n")
	}
	return buf.Bytes()
}
