package syntax

import (
	"github.com/AvengeMedia/dankgruvbox/internal/palette"
	"github.com/AvengeMedia/dankgruvbox/internal/vscode"
)

func rule(name, foreground, fontStyle string, scopes ...string) vscode.TokenColor {
	return vscode.TokenColor{
		Name:  name,
		Scope: vscode.Scope(scopes),
		Settings: vscode.TokenSetting{
			Foreground: foreground,
			FontStyle:  fontStyle,
		},
	}
}

// defaultRules colors only what a reader needs to parse code at a glance.
func defaultRules(p palette.Palette) []vscode.TokenColor {
	return []vscode.TokenColor{
		rule(CommentRuleName, p.Grey1, "", "comment", "punctuation.definition.comment"),
		rule("Keyword", p.Red, "", "keyword", "keyword.control", "keyword.other", "storage", "storage.modifier"),
		rule("Operator", p.Orange, "", "keyword.operator"),
		rule("String", p.Aqua, "", "string", "punctuation.definition.string"),
		rule("Escape character", p.Yellow, "", "constant.character.escape"),
		rule("Regular expression", p.Green, "", "string.regexp"),
		rule("Number", p.Purple, "", "constant.numeric"),
		rule("Language constant", p.Purple, "", "constant.language"),
		rule("Support constant", p.Orange, "", "support.constant"),
		rule("Function", p.Green, "", "entity.name.function", "support.function", "meta.function-call"),
		rule("Type", p.Yellow, "", "entity.name.type", "entity.name.class", "support.type", "support.class", "storage.type"),
		rule("Namespace", p.Yellow, "", "entity.name.namespace", "entity.name.module"),
		rule("Variable", p.Fg, "", "variable", "variable.other", "variable.parameter"),
		rule("Language variable", p.Purple, "", "variable.language"),
		rule("Decorator", p.Aqua, "", "meta.decorator", "punctuation.decorator"),
		rule("Preprocessor", p.Purple, "", "meta.preprocessor", "keyword.control.directive"),
		rule("Tag", p.Orange, "", "entity.name.tag"),
		rule("Attribute", p.Yellow, "", "entity.other.attribute-name"),
		rule("Punctuation", p.Fg, "", "punctuation", "meta.brace"),
		rule("Invalid", p.Red, "", "invalid", "invalid.illegal"),
		rule("Deprecated", p.Purple, "strikethrough", "invalid.deprecated"),
		rule("Markup heading", p.Orange, "bold", "markup.heading", "entity.name.section"),
		rule("Markup bold", "", "bold", "markup.bold"),
		rule("Markup italic", "", "italic", "markup.italic"),
		rule("Markup strikethrough", "", "strikethrough", "markup.strikethrough"),
		rule("Markup code", p.Green, "", "markup.inline.raw", "markup.fenced_code", "markup.raw"),
		rule("Markup link", p.Blue, "underline", "markup.underline.link", "string.other.link"),
		rule("Markup inserted", p.Green, "", "markup.inserted"),
		rule("Markup deleted", p.Red, "", "markup.deleted"),
		rule("Markup changed", p.Blue, "", "markup.changed"),
	}
}

// colorfulRules extends the default set; later rules win for the scopes they repeat.
func colorfulRules(p palette.Palette) []vscode.TokenColor {
	extra := []vscode.TokenColor{
		rule("Control flow", p.Red, "", "keyword.control.flow", "keyword.control.conditional", "keyword.control.loop"),
		rule("Import", p.Purple, "", "keyword.control.import", "keyword.control.export", "keyword.control.from"),
		rule("Primitive type", p.Yellow, "", "support.type.primitive", "storage.type.primitive", "storage.type.built-in"),
		rule("Interface", p.Yellow, "", "entity.name.type.interface"),
		rule("Inherited class", p.Yellow, "", "entity.other.inherited-class"),
		rule("Type parameter", p.Yellow, "", "entity.name.type.parameter"),
		rule("Annotation", p.Aqua, "", "storage.type.annotation"),
		rule("Method", p.Green, "", "entity.name.function.member", "meta.method-call"),
		rule("Builtin function", p.Green, "bold", "support.function.builtin"),
		rule("Macro", p.Aqua, "", "entity.name.function.macro"),
		rule("Property", p.Blue, "", "variable.other.property", "variable.other.object.property", "support.variable.property", "meta.object-literal.key"),
		rule("Parameter", p.Fg1, "", "variable.parameter"),
		rule("Enum member", p.Purple, "", "variable.other.enummember"),
		rule("Constant variable", p.Purple, "", "variable.other.constant"),
		rule("Self parameter", p.Purple, "", "variable.parameter.function.language.special.self.python"),
		rule("Shell variable", p.Aqua, "", "variable.other.normal.shell", "punctuation.definition.variable.shell"),
		rule("Go package", p.Purple, "", "entity.name.package.go"),
		rule("Rust lifetime", p.Orange, "", "storage.modifier.lifetime.rust", "entity.name.lifetime.rust"),
		rule("Label", p.Orange, "", "entity.name.label"),
		rule("Character", p.Aqua, "", "constant.character"),
		rule("Format placeholder", p.Yellow, "", "constant.other.placeholder", "constant.character.format.placeholder"),
		rule("Unit", p.Purple, "", "keyword.other.unit"),
		rule("JSON key", p.Green, "", "support.type.property-name.json"),
		rule("YAML key", p.Green, "", "entity.name.tag.yaml"),
		rule("CSS property", p.Orange, "", "support.type.property-name.css"),
		rule("CSS value", p.Aqua, "", "support.constant.property-value.css"),
		rule("CSS selector", p.Yellow, "", "entity.other.attribute-name.class.css", "entity.other.attribute-name.id.css"),
		rule("Markdown list", p.Red, "", "punctuation.definition.list.begin.markdown"),
		rule("Markdown quote", p.Grey1, "", "markup.quote"),
		rule("SQL table", p.Yellow, "", "constant.other.table-name.sql"),
	}
	return append(defaultRules(p), extra...)
}
