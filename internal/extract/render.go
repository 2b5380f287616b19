package extract

import (
	"strings"

	"github.com/mvp-joe/contextpack/internal/language"
)

// BodyPlaceholder is the fixed marker shown wherever an executable body was
// elided. Renderings wrap it in language-appropriate framing ("{ ... }" for
// brace languages) but the marker itself never changes.
const BodyPlaceholder = "..."

// bodyFamily selects the framing used around BodyPlaceholder.
type bodyFamily int

const (
	familyBrace bodyFamily = iota
	familyColon
	familyEnd
)

func familyFor(lang string) bodyFamily {
	switch lang {
	case language.Python:
		return familyColon
	case language.Ruby:
		return familyEnd
	default:
		return familyBrace
	}
}

// Render flattens a skeleton tree into text. Declarations keep their exact
// source signatures and original indentation; elided bodies show
// BodyPlaceholder. Output is a deterministic pure function of the tree.
func Render(root *Node, lang string) string {
	if root == nil {
		return ""
	}

	family := familyFor(lang)
	var sb strings.Builder

	if root.Signature != "" {
		sb.WriteString(root.Signature)
		sb.WriteString("\n")
	}

	for _, child := range root.Children {
		sb.WriteString("\n")
		renderNode(&sb, child, family)
	}

	return sb.String()
}

func renderNode(sb *strings.Builder, n *Node, family bodyFamily) {
	indent := strings.Repeat(" ", n.Indent)

	if n.Verbatim {
		sb.WriteString(indent)
		sb.WriteString(n.Signature)
		sb.WriteString("\n")
		return
	}

	if len(n.Children) == 0 {
		sb.WriteString(indent)
		sb.WriteString(n.Signature)
		writeElidedBody(sb, family, indent)
		return
	}

	// Container with surfaced members: reopen the body, emit the member
	// skeletons at their original columns, close the body.
	sb.WriteString(indent)
	sb.WriteString(n.Signature)
	switch family {
	case familyBrace:
		sb.WriteString(" {\n")
	default:
		sb.WriteString("\n")
	}
	for _, child := range n.Children {
		renderNode(sb, child, family)
	}
	switch family {
	case familyBrace:
		sb.WriteString(indent + "}\n")
	case familyEnd:
		sb.WriteString(indent + "end\n")
	}
}

func writeElidedBody(sb *strings.Builder, family bodyFamily, indent string) {
	switch family {
	case familyBrace:
		sb.WriteString(" { " + BodyPlaceholder + " }\n")
	case familyColon:
		// Python signatures already end with the colon.
		sb.WriteString(" " + BodyPlaceholder + "\n")
	case familyEnd:
		sb.WriteString("\n" + indent + "  " + BodyPlaceholder + "\n" + indent + "end\n")
	}
}
