package planner

import (
	"math"
	"sort"
)

// BuildSubjectQueue converts priority scores into a repeating,
// interleaved sequence of subject keys. The sequence is one full cycle;
// consumers index into it modulo its length. Slot counts are
// proportional to priority with a guaranteed minimum of one, and the
// revision-exam subject (an exam 1-2 days out) is overrepresented by a
// factor of 1.4. Interleaving is a round-robin over
// descending-remaining-count order, so no subject repeats back-to-back
// unless it dominates the cycle. Deterministic for a given score
// vector.
func BuildSubjectQueue(scores []SubjectScore, revisionExamKey string) []string {
	switch len(scores) {
	case 0:
		return nil
	case 1:
		return []string{scores[0].Key}
	}

	total := 0.0
	for _, s := range scores {
		total += s.Priority
	}
	if total <= 0 {
		// Nothing to weight by: fall back to the given order, each once.
		queue := make([]string, len(scores))
		for i, s := range scores {
			queue[i] = s.Key
		}
		return queue
	}

	cycle := max(10, 3*len(scores))

	type slotEntry struct {
		key       string
		priority  float64
		remaining int
	}
	entries := make([]slotEntry, len(scores))
	for i, s := range scores {
		count := int(math.Round(s.Priority / total * float64(cycle)))
		if count < 1 {
			count = 1
		}
		if s.Key == revisionExamKey {
			count = int(math.Ceil(float64(count) * 1.4))
		}
		entries[i] = slotEntry{key: s.Key, priority: s.Priority, remaining: count}
	}

	var queue []string
	for {
		// Take one slot from each subject in descending-remaining-count
		// order; ties break toward higher priority, then input order.
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].remaining != entries[j].remaining {
				return entries[i].remaining > entries[j].remaining
			}
			return entries[i].priority > entries[j].priority
		})

		took := false
		for i := range entries {
			if entries[i].remaining > 0 {
				queue = append(queue, entries[i].key)
				entries[i].remaining--
				took = true
			}
		}
		if !took {
			return queue
		}
	}
}
