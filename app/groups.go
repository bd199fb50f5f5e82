package app

import "github.com/Ivan-Ryukendo/FileXSorter/models"

// sizeCandidates drops every file whose size is unique within the
// collected set. Such files cannot have a duplicate, so they never reach
// the hashing phase. Pure, no filesystem access. The surviving records
// keep their discovery order within each size bucket and buckets are
// emitted in first-seen order.
func sizeCandidates(files []models.FileRecord) []models.FileRecord {
	bySize := make(map[int64][]models.FileRecord)
	var order []int64

	for _, f := range files {
		if _, seen := bySize[f.Size]; !seen {
			order = append(order, f.Size)
		}
		bySize[f.Size] = append(bySize[f.Size], f)
	}

	var candidates []models.FileRecord
	for _, size := range order {
		if bucket := bySize[size]; len(bucket) > 1 {
			candidates = append(candidates, bucket...)
		}
	}
	return candidates
}

// buildGroups partitions hashed records by digest and converts every
// partition with at least two members into a DuplicateGroup. Members of a
// group all share one size (grouping by size preceded hashing), so the
// wasted size is the group total minus a single copy.
func buildGroups(hashed []models.FileRecord) []models.DuplicateGroup {
	byHash := make(map[string][]models.FileRecord)
	var order []string

	for _, f := range hashed {
		if f.Hash == "" {
			continue
		}
		if _, seen := byHash[f.Hash]; !seen {
			order = append(order, f.Hash)
		}
		byHash[f.Hash] = append(byHash[f.Hash], f)
	}

	var groups []models.DuplicateGroup
	for _, hash := range order {
		members := byHash[hash]
		if len(members) < 2 {
			continue
		}

		var totalSize int64
		for _, m := range members {
			totalSize += m.Size
		}

		groups = append(groups, models.DuplicateGroup{
			Hash:       hash,
			Files:      members,
			TotalSize:  totalSize,
			WastedSize: totalSize - members[0].Size,
		})
	}
	return groups
}
