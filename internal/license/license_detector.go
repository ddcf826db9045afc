// Package license identifies the license of a scanned project from its
// LICENSE-style files.
package license

import (
	"sort"

	"github.com/go-enry/go-license-detector/v4/licensedb"
	"github.com/go-enry/go-license-detector/v4/licensedb/filer"
)

// Match is one detected license.
type Match struct {
	License    string  `json:"license" yaml:"license"`
	Confidence float32 `json:"confidence" yaml:"confidence"`
	File       string  `json:"file" yaml:"file"`
}

// DetectInDirectory detects licenses from LICENSE files in a directory and
// returns the matches with confidence > 0.9, best first. Detection failures
// yield nil; license identification is informational and never fails a scan.
func DetectInDirectory(dirPath string) []Match {
	fs, err := filer.FromDirectory(dirPath)
	if err != nil {
		return nil
	}

	results, err := licensedb.Detect(fs)
	if err != nil {
		return nil
	}

	var matches []Match
	for licenseID, result := range results {
		if result.Confidence > 0.9 {
			matches = append(matches, Match{
				License:    licenseID,
				Confidence: result.Confidence,
				File:       result.File,
			})
		}
	}

	sort.Slice(matches, func(a, b int) bool {
		if matches[a].Confidence != matches[b].Confidence {
			return matches[a].Confidence > matches[b].Confidence
		}
		return matches[a].License < matches[b].License
	})

	return matches
}
