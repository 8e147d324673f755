package document

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

var docxEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// extractDOCX extracts the paragraph texts of the document in order, joined
// by newlines.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrParse, err)
	}
	defer doc.Close()

	return strings.TrimSpace(docxContentToText(doc.Editable().GetContent())), nil
}

// docxContentToText converts the raw word/document.xml markup into plain
// text: paragraph ends become newlines, tabs survive, every other tag is
// dropped and entities are unescaped.
func docxContentToText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = docxTagRe.ReplaceAllString(content, "")
	content = docxEntityReplacer.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return strings.Join(lines, "\n")
}
