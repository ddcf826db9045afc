// Package assets classifies files into non-code asset categories.
//
// Several extensions legitimately belong to more than one category (.dat can
// be a game save or a generic archive, .fla is Flash and an Adobe Animate
// project), so classification runs an ordered chain of category predicates.
// The first predicate whose extension set contains the file's extension wins;
// the chain order is itself part of the contract.
package assets

import (
	"path/filepath"
	"strings"

	"github.com/HatsuSumi/project-stats/internal/sniff"
)

// Category identifies a non-code resource category.
type Category string

const (
	Image           Category = "image"
	Texture         Category = "texture"
	Video           Category = "video"
	Audio           Category = "audio"
	AudioMiddleware Category = "audio_middleware"
	DAW             Category = "daw"
	Adobe           Category = "adobe"
	ArtSource       Category = "art_source"
	Live2D          Category = "live2d"
	Spine           Category = "spine"
	Model3D         Category = "model3d"
	GameModel       Category = "game_model"
	GameArchive     Category = "game_archive"
	GameSave        Category = "game_save"
	Design          Category = "design"
	MobilePackage   Category = "mobile_package"
	ROM             Category = "rom"
	Flash           Category = "flash"
	VideoEdit       Category = "video_edit"
	Office          Category = "office"
	PDF             Category = "pdf"
	Archive         Category = "archive"
	Font            Category = "font"
	Backup          Category = "backup"
	OtherAsset      Category = "other_asset"
)

// labels are display names for asset reporting. GameModel has no predicate in
// the current chain but stays addressable for engine-specific sub-reports.
var labels = map[Category]string{
	Image:           "Images",
	Texture:         "Textures",
	Video:           "Video files",
	Audio:           "Audio files",
	AudioMiddleware: "Audio middleware banks",
	DAW:             "DAW projects / scores",
	Adobe:           "Adobe projects / assets",
	ArtSource:       "Painting / pixel-art sources",
	Live2D:          "Live2D models",
	Spine:           "Spine animations",
	Model3D:         "3D models",
	GameModel:       "Game engine models / assets",
	GameArchive:     "Game archives / packages",
	GameSave:        "Game saves",
	Design:          "Design docs / mind maps",
	MobilePackage:   "Mobile app packages",
	ROM:             "Game ROMs / images",
	Flash:           "Flash files",
	VideoEdit:       "Video editing projects",
	Office:          "Office documents",
	PDF:             "PDF documents",
	Archive:         "Archives",
	Font:            "Fonts",
	Backup:          "Backup files",
	OtherAsset:      "Other assets",
}

// Label returns the display name of a category.
func Label(c Category) string {
	if label, ok := labels[c]; ok {
		return label
	}
	return string(c)
}

// NoExtension is the sub-kind placeholder for files without an extension.
const NoExtension = "(no extension)"

// Kind is a resolved asset classification: the category plus a free-form
// sub-kind, typically the extension.
type Kind struct {
	Category Category
	Sub      string
}

var backupExts = set(".bak", ".old", ".orig", ".tmp", ".swp", ".~")

// live2dSuffixes are matched against the full lowercase filename, not the
// extension: Live2D sidecar files use multi-segment suffixes.
var live2dSuffixes = []string{
	".model3.json",
	".motion3.json",
	".physics3.json",
	".pose3.json",
	".cdi3.json",
	".exp3.json",
	".cubism.json",
}

var live2dBinaryExts = set(".moc3", ".moc")

var spineExts = set(".spine", ".skel", ".atlas")

var adobeExts = set(
	// Photoshop
	".psd", ".psb", ".psdt", ".abr", ".atn", ".aco", ".ase", ".asl", ".pat", ".grd",
	// Illustrator
	".ai", ".ait",
	// InDesign
	".indd", ".idml", ".indt",
	// After Effects
	".aep", ".aet",
	// Premiere Pro
	".prproj",
	// Audition
	".sesx",
	// Lightroom
	".lrcat",
	// XD
	".xd",
	// Animate / Flash
	".fla", ".xfl",
)

var artSourceExts = set(
	".clip", ".cmc", // Clip Studio Paint
	".sai", ".sai2", // SAI
	".kra", ".krz", // Krita
	".ase", ".aseprite", // Aseprite
	".procreate", // Procreate
	".ora",       // OpenRaster
	".mdp",       // FireAlpaca / MediBang
)

var dawExts = set(
	".flp",          // FL Studio
	".cpr", ".npr", // Cubase / Nuendo
	".als",             // Ableton Live
	".logic", ".logicx", // Logic Pro
	".rpp",          // Reaper
	".song",         // Studio One
	".ptx", ".ptf", // Pro Tools
	".reason",         // Reason
	".mscz", ".mscx", // MuseScore
	".sib",          // Sibelius
	".mus", ".musx", // Finale
	".vsqx", ".vpr", ".ust", ".svp", // Vocaloid / Synthesizer V
)

var videoEditExts = set(
	".veg", ".veg-bak", // Vegas Pro
	".drp",    // DaVinci Resolve
	".fcpxml", // Final Cut Pro
	".edl",    // Edit Decision List
)

var designExts = set(
	".xmind", ".mm", ".km", // mind maps
	".fountain", ".fdx", // screenplays
	".articy",       // Articy:draft
	".twee", ".tw", // Twine
	".drawio",        // Draw.io
	".axure", ".rp", // Axure
)

var mobilePackageExts = set(
	".apk", ".aab", ".xapk", ".obb", // Android
	".ipa", ".app", // iOS
	".so", ".dex", // Android native
)

var romExts = set(
	".nes", ".sfc", ".smc", // FC/SFC
	".gba", ".gbc", ".gb", // GameBoy
	".nds", ".3ds", ".cia", // DS/3DS
	".nsp", ".xci", // Switch
	".iso", ".wbfs", ".gcm", // Wii/GC/PS2
	".cso",          // PSP
	".n64", ".z64", // N64
)

// .flv is also a video extension; chain order sends it to Flash first.
var flashExts = set(".swf", ".fla", ".flv")

var gameSaveExts = set(
	".sav", ".save",
	".rpgsave", // RPG Maker
	".sol",     // Flash shared object
	".dat",     // resolved as save ahead of game archives
	".osr",     // osu! replay
	".srm", ".state", // emulator saves
)

var audioMiddlewareExts = set(
	".bnk", ".pck", // Wwise
	".acb", ".awb", // CRI ADX2
	".fsb", ".fev", ".bank", // FMOD
	".wem",          // Wwise encoded media
	".sab", ".sob", // Sony
)

var gameArchiveExts = set(
	".pak",                          // Unreal / generic
	".cpk",                          // CRI middleware
	".arc", ".bfa", ".bin", ".dat", ".cat", ".idx", // generic
	".assets", ".bundle", // Unity
	".vpk",                        // Source engine
	".rgss3a", ".rgss2a", ".rgssad", // RPG Maker
	".xp3", // Kirikiri
	".npk", ".kpk",
	".asar", // Electron
	".bsp",  // Source engine compiled map
	".wad",  // Doom / Half-Life
)

var textureExts = set(
	".dds", ".ktx", ".ktx2", ".pvr", ".astc", ".pkm", ".atc", ".tex", ".mat",
	".assetbundle",
	".vtf", ".vmt", // Source engine
)

var imageExts = set(
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tiff", ".ico", ".svg",
	".tga", ".exr", ".hdr", ".tif", ".heic", ".raw",
)

var videoExts = set(".mp4", ".mkv", ".mov", ".avi", ".webm", ".wmv", ".flv", ".m4v", ".ogv", ".ts", ".3gp")

var audioExts = set(".mp3", ".wav", ".flac", ".aac", ".ogg", ".m4a", ".opus", ".wma", ".mid", ".midi", ".aiff", ".caf", ".m4b")

var model3DExts = set(
	".fbx", ".obj", ".gltf", ".glb", ".dae", ".3ds", ".blend", ".stl", ".ply", ".usd", ".usdz",
	".abc", ".x", ".mqo", // Metasequoia
	".pmx", ".pmd", ".vmd", ".vpd", // MMD
	".ma", ".mb", // Maya
	".max", // 3ds Max
	".c4d", // Cinema 4D
)

var officeExts = set(
	".xlsx", ".xls", ".xlsm", ".xlsb",
	".docx", ".doc",
	".pptx", ".ppt", ".ppsx", ".pps",
)

var fontExts = set(".woff", ".woff2", ".ttf", ".otf", ".eot", ".ttc")

var archiveExts = set(".zip", ".7z", ".rar", ".gz", ".tar", ".bz2", ".xz", ".iso", ".img", ".dmg", ".cab")

// extRule is one (category, extension set) pair of the chain.
type extRule struct {
	category Category
	exts     map[string]bool
}

// chain is evaluated top to bottom; more specific or override-prone
// categories come first.
var chain = []extRule{
	{Spine, spineExts},
	{Adobe, adobeExts},
	{ArtSource, artSourceExts},
	{DAW, dawExts},
	{VideoEdit, videoEditExts},
	{Design, designExts},
	{MobilePackage, mobilePackageExts},
	{ROM, romExts},
	{Flash, flashExts},
	{GameSave, gameSaveExts},
	{AudioMiddleware, audioMiddlewareExts},
	{GameArchive, gameArchiveExts},
	{Texture, textureExts},
	{Image, imageExts},
	{Video, videoExts},
	{Audio, audioExts},
	{Model3D, model3DExts},
	{Office, officeExts},
	{PDF, set(".pdf")},
	{Archive, archiveExts},
	{Font, fontExts},
}

// Detect classifies a path as a non-code asset. It returns false for plain
// source/text files that match no rule and are not sniffed as binary.
func Detect(path string) (Kind, bool) {
	nameLow := strings.ToLower(filepath.Base(path))
	ext := strings.ToLower(filepath.Ext(path))

	// Backups keep the previous extension in the sub-kind so the original
	// asset type stays visible in detail reports.
	if backupExts[ext] {
		stemExt := strings.ToLower(filepath.Ext(strings.TrimSuffix(filepath.Base(path), ext)))
		if stemExt != "" {
			return Kind{Backup, stemExt + ext}, true
		}
		return Kind{Backup, ext}, true
	}

	// Live2D sidecars are JSON text, but semantically assets.
	for _, suffix := range live2dSuffixes {
		if strings.HasSuffix(nameLow, suffix) {
			return Kind{Live2D, suffix}, true
		}
	}
	if live2dBinaryExts[ext] {
		return Kind{Live2D, ext}, true
	}

	for _, rule := range chain {
		if rule.exts[ext] {
			return Kind{rule.category, ext}, true
		}
	}

	// Unmatched binary files still count as assets.
	if sniff.IsBinary(path) {
		return Kind{OtherAsset, extOrPlaceholder(ext)}, true
	}

	return Kind{}, false
}

func extOrPlaceholder(ext string) string {
	if ext == "" {
		return NoExtension
	}
	return ext
}

func set(exts ...string) map[string]bool {
	m := make(map[string]bool, len(exts))
	for _, ext := range exts {
		m[ext] = true
	}
	return m
}
