// Package lang classifies files into source-language tags using filename and
// extension rules only. Classification never reads file content.
package lang

import (
	"path/filepath"
	"strings"
)

// Tag identifies a source-code category for statistics purposes.
// The set is closed: every file resolves to exactly one tag, with Other as
// the catch-all.
type Tag string

const (
	JavaScript  Tag = "JavaScript"
	TypeScript  Tag = "TypeScript"
	HTML        Tag = "HTML"
	CSS         Tag = "CSS"
	SCSS        Tag = "SCSS"
	Less        Tag = "Less"
	JSON        Tag = "JSON"
	YAML        Tag = "YAML"
	XML         Tag = "XML"
	TOML        Tag = "TOML"
	INI         Tag = "INI"
	Markdown    Tag = "Markdown"
	C           Tag = "C"
	CPP         Tag = "C++"
	CSharp      Tag = "C#"
	ObjectiveC  Tag = "Objective-C"
	Java        Tag = "Java"
	Kotlin      Tag = "Kotlin"
	Swift       Tag = "Swift"
	Go          Tag = "Go"
	Rust        Tag = "Rust"
	Dart        Tag = "Dart"
	Scala       Tag = "Scala"
	Python      Tag = "Python"
	Ruby        Tag = "Ruby"
	PHP         Tag = "PHP"
	Perl        Tag = "Perl"
	Lua         Tag = "Lua"
	R           Tag = "R"
	SQL         Tag = "SQL"
	Shell       Tag = "Shell"
	PowerShell  Tag = "PowerShell"
	Batch       Tag = "Batch"
	Shader      Tag = "Shader"
	Unity       Tag = "Unity"
	Unreal      Tag = "Unreal"
	Godot       Tag = "Godot"
	RenPy       Tag = "RenPy"
	RPGMaker    Tag = "RPG Maker"
	Kirikiri    Tag = "Kirikiri"
	ActionScrpt Tag = "ActionScript"
	Haxe        Tag = "Haxe"
	WASM        Tag = "WebAssembly"
	License     Tag = "License"
	Other       Tag = "Other"
)

// typeDef binds a tag to its extensions. Order matters: the table below is
// folded into extToTag in order, so a later definition silently wins when an
// extension appears twice. That is the documented resolution policy, not a bug.
type typeDef struct {
	tag  Tag
	exts []string
}

var typeDefs = []typeDef{
	// Web / markup / data
	{JavaScript, []string{".js", ".mjs", ".cjs"}},
	{TypeScript, []string{".ts", ".tsx", ".mts", ".cts"}},
	{HTML, []string{".html", ".htm", ".xhtml"}},
	{CSS, []string{".css"}},
	{SCSS, []string{".scss", ".sass"}},
	{Less, []string{".less"}},
	{JSON, []string{".json", ".json5", ".jsonc"}},
	{YAML, []string{".yml", ".yaml"}},
	{XML, []string{".xml", ".xsl", ".xslt", ".svg", ".xaml"}},
	{TOML, []string{".toml"}},
	{INI, []string{".ini", ".cfg", ".conf", ".editorconfig", ".properties", ".prefs"}},
	{Markdown, []string{".md", ".markdown", ".mdown", ".mkd"}},
	// C family / compiled
	{C, []string{".c", ".h"}},
	{CPP, []string{".cc", ".cpp", ".cxx", ".hpp", ".hh", ".hxx", ".inl", ".inc"}},
	{CSharp, []string{".cs", ".csx"}},
	{ObjectiveC, []string{".m", ".mm"}},
	{Java, []string{".java", ".jav", ".jsp"}},
	{Kotlin, []string{".kt", ".kts"}},
	{Swift, []string{".swift"}},
	{Go, []string{".go"}},
	{Rust, []string{".rs", ".rlib"}},
	{Dart, []string{".dart"}},
	{Scala, []string{".scala", ".sc"}},
	// Scripting
	{Python, []string{".py", ".pyw", ".pyi"}},
	{Ruby, []string{".rb", ".rake", ".gemspec"}},
	{PHP, []string{".php", ".phtml", ".php3", ".php4", ".php5", ".phps"}},
	{Perl, []string{".pl", ".pm", ".t"}},
	{Lua, []string{".lua"}},
	{R, []string{".r", ".rmd"}},
	{SQL, []string{".sql", ".ddl", ".dml"}},
	{Shell, []string{".sh", ".bash", ".zsh", ".fish", ".ksh"}},
	{PowerShell, []string{".ps1", ".psm1", ".psd1"}},
	{Batch, []string{".bat", ".cmd"}},
	// Game engines & shaders
	{Shader, []string{".shader", ".cg", ".cginc", ".hlsl", ".glsl", ".vert", ".frag", ".geom", ".comp", ".tesc", ".tese", ".vsh", ".fsh"}},
	{Unity, []string{".unity", ".prefab", ".asset", ".meta", ".mat", ".controller", ".anim", ".mask"}},
	{Unreal, []string{".uproject", ".umap", ".uasset"}},
	{Godot, []string{".gd", ".tscn", ".tres", ".godot"}},
	{RenPy, []string{".rpy", ".rpyc", ".rpym"}},
	{RPGMaker, []string{".rvdata2", ".rpgsave"}},
	{Kirikiri, []string{".ks", ".tjs"}},
	{ActionScrpt, []string{".as"}},
	{Haxe, []string{".hx"}},
	{WASM, []string{".wat"}}, // .wasm is binary
}

// extToTag is the flattened lookup table built once at init.
var extToTag = func() map[string]Tag {
	m := make(map[string]Tag)
	for _, def := range typeDefs {
		for _, ext := range def.exts {
			m[strings.ToLower(ext)] = def.tag
		}
	}
	return m
}()

// licenseNames are exact (lowercased) filenames treated as license files.
var licenseNames = map[string]bool{
	"license":     true,
	"license.txt": true,
	"license.md":  true,
	"copying":     true,
	"copying.txt": true,
	"copying.md":  true,
}

// Detect maps a path to its language tag. Rule order, first match wins:
// license filename, extension table, Other.
func Detect(path string) Tag {
	name := strings.ToLower(filepath.Base(path))
	if licenseNames[name] || strings.HasPrefix(name, "license") || strings.HasPrefix(name, "copying") {
		return License
	}

	ext := strings.ToLower(filepath.Ext(path))
	if tag, ok := extToTag[ext]; ok {
		return tag
	}
	return Other
}

// codeEligible lists the tags that participate in code statistics.
// Engine/project formats (Unity, Unreal, ...) are counted as files but their
// content is not treated as code.
var codeEligible = map[Tag]bool{
	JavaScript: true, TypeScript: true, HTML: true, CSS: true, SCSS: true,
	Less: true, Python: true, Batch: true, C: true, CPP: true, CSharp: true,
	ObjectiveC: true, Java: true, Kotlin: true, Swift: true, Go: true,
	Rust: true, Dart: true, Scala: true, Ruby: true, PHP: true, Perl: true,
	Lua: true, R: true, SQL: true, Shell: true, PowerShell: true,
	XML: true, JSON: true, YAML: true, TOML: true, INI: true,
}

// CodeEligible reports whether files of this tag contribute to code stats.
func CodeEligible(tag Tag) bool {
	return codeEligible[tag]
}

// fileLabels are display names for file-count reporting.
var fileLabels = map[Tag]string{
	JavaScript: "JavaScript files",
	TypeScript: "TypeScript files",
	JSON:       "JSON files",
	HTML:       "HTML files",
	CSS:        "CSS files",
	SCSS:       "SCSS/Sass files",
	Less:       "Less files",
	YAML:       "YAML files",
	XML:        "XML files",
	TOML:       "TOML files",
	INI:        "INI/config files",
	Markdown:   "Markdown documents",
	C:          "C files",
	CPP:        "C++ files",
	CSharp:     "C# files",
	ObjectiveC: "Objective-C files",
	Java:       "Java files",
	Kotlin:     "Kotlin files",
	Swift:      "Swift files",
	Go:         "Go files",
	Rust:       "Rust files",
	Dart:       "Dart files",
	Scala:      "Scala files",
	Python:     "Python scripts",
	Ruby:       "Ruby scripts",
	PHP:        "PHP scripts",
	Perl:       "Perl scripts",
	Lua:        "Lua scripts",
	R:          "R scripts",
	SQL:        "SQL scripts",
	Shell:      "Shell scripts",
	PowerShell: "PowerShell scripts",
	Batch:      "Batch scripts",
	Unity:      "Unity project files",
	Unreal:     "Unreal project files",
	Godot:      "Godot files",
	RenPy:      "Ren'Py scripts",
	RPGMaker:   "RPG Maker data",
	Shader:     "Shader code",
	License:    "License files",
	Other:      "Other files",
}

// codeLabels are short names used in code-statistics rows.
var codeLabels = map[Tag]string{
	ObjectiveC: "ObjC",
	Batch:      "Batch",
	WASM:       "WASM(Text)",
}

// FileLabel returns the display name used for file-count reporting.
func FileLabel(tag Tag) string {
	if label, ok := fileLabels[tag]; ok {
		return label
	}
	return string(tag)
}

// CodeLabel returns the short name used in code-statistics rows.
func CodeLabel(tag Tag) string {
	if label, ok := codeLabels[tag]; ok {
		return label
	}
	return string(tag)
}

// Descriptor describes one supported tag for the languages command.
type Descriptor struct {
	Tag        Tag      `json:"tag"`
	Extensions []string `json:"extensions"`
	CodeStats  bool     `json:"code_stats"`
}

// Descriptors returns all tags with an extension rule, in definition order.
func Descriptors() []Descriptor {
	result := make([]Descriptor, 0, len(typeDefs))
	for _, def := range typeDefs {
		result = append(result, Descriptor{
			Tag:        def.tag,
			Extensions: append([]string(nil), def.exts...),
			CodeStats:  codeEligible[def.tag],
		})
	}
	return result
}
