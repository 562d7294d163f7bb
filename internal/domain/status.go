package domain

import "strings"

// FileStatusFlags is the set of status flags carried by one file.
// A file may carry flags from the working-tree and index families at once.
type FileStatusFlags uint16

const (
	WorktreeDeleted FileStatusFlags = 1 << iota
	WorktreeModified
	WorktreeNew
	WorktreeRenamed
	WorktreeTypeChange
	IndexDeleted
	IndexModified
	IndexNew
	IndexRenamed
	IndexTypeChange
	// Conflicted marks an unmerged entry. It belongs to neither family.
	Conflicted
)

const (
	// WorktreeFamily is every flag describing an unstaged change.
	WorktreeFamily = WorktreeDeleted | WorktreeModified | WorktreeNew | WorktreeRenamed | WorktreeTypeChange
	// IndexFamily is every flag describing a staged change.
	IndexFamily = IndexDeleted | IndexModified | IndexNew | IndexRenamed | IndexTypeChange
)

var flagNames = []struct {
	flag FileStatusFlags
	name string
}{
	{WorktreeDeleted, "wt_deleted"},
	{WorktreeModified, "wt_modified"},
	{WorktreeNew, "wt_new"},
	{WorktreeRenamed, "wt_renamed"},
	{WorktreeTypeChange, "wt_typechange"},
	{IndexDeleted, "index_deleted"},
	{IndexModified, "index_modified"},
	{IndexNew, "index_new"},
	{IndexRenamed, "index_renamed"},
	{IndexTypeChange, "index_typechange"},
	{Conflicted, "conflicted"},
}

// Intersects reports whether any flag of other is set in f.
func (f FileStatusFlags) Intersects(other FileStatusFlags) bool {
	return f&other != 0
}

// String lists the set flags separated by "|".
func (f FileStatusFlags) String() string {
	if f == 0 {
		return "current"
	}
	var names []string
	for _, fn := range flagNames {
		if f.Intersects(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// ChangeSummary is the reduced view of a status scan.
type ChangeSummary struct {
	Staged   bool `json:"staged"`
	Unstaged bool `json:"unstaged"`
}

// ClassifyStatus reduces the per-file flags of a full status scan to the
// staged and unstaged booleans. The result does not depend on entry order.
func ClassifyStatus(entries []FileStatusFlags) ChangeSummary {
	var summary ChangeSummary
	for _, flags := range entries {
		if flags.Intersects(WorktreeFamily) {
			summary.Unstaged = true
		}
		if flags.Intersects(IndexFamily) {
			summary.Staged = true
		}
		if summary.Staged && summary.Unstaged {
			break
		}
	}
	return summary
}
