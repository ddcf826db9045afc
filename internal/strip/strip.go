// Package strip removes comments from source text while leaving string and
// character literal contents intact and preserving newlines outside removed
// regions, so downstream line counting stays aligned.
//
// Each grammar family has its own single-pass scanner with local state; no
// scanner shares mutable state across calls.
package strip

import "github.com/HatsuSumi/project-stats/internal/lang"

// cLikeTags share the // and /* */ grammar, including the shader dialects and
// engine scripting languages that borrow C syntax.
var cLikeTags = map[lang.Tag]bool{
	lang.JavaScript: true, lang.TypeScript: true,
	lang.CSS: true, lang.SCSS: true, lang.Less: true,
	lang.C: true, lang.CPP: true, lang.CSharp: true, lang.ObjectiveC: true,
	lang.Java: true, lang.Kotlin: true, lang.Swift: true,
	lang.Go: true, lang.Rust: true, lang.Dart: true, lang.Scala: true,
	lang.PHP:    true,
	lang.Shader: true, // HLSL/GLSL/CG
	lang.Unity:  true, // ShaderLab or embedded C# scripts
	lang.ActionScrpt: true, lang.Haxe: true,
	lang.Kirikiri: true, // TJS is C-like
}

// hashLineTags use # to end-of-line with quote awareness.
var hashLineTags = map[lang.Tag]bool{
	lang.Shell: true, lang.Ruby: true, lang.Perl: true, lang.R: true,
	lang.YAML: true, lang.TOML: true,
	lang.RenPy: true, lang.Godot: true, // GDScript also uses #
}

// ForTag strips comments from text according to the grammar family of tag.
// Tags with no defined grammar (JSON, Markdown, Other, ...) pass through
// unchanged: JSON has no comment syntax and Markdown is not code.
func ForTag(tag lang.Tag, text string) string {
	switch {
	case cLikeTags[tag]:
		return CLike(text)
	case tag == lang.HTML || tag == lang.XML:
		return Markup(text)
	case tag == lang.Python:
		return Python(text)
	case tag == lang.Batch:
		return BatchLines(text)
	case hashLineTags[tag]:
		return HashLine(text)
	case tag == lang.PowerShell:
		return PowerShellScript(text)
	case tag == lang.SQL:
		return SQLScript(text)
	case tag == lang.INI:
		return INILines(text)
	case tag == lang.Lua:
		return LuaScript(text)
	default:
		return text
	}
}
