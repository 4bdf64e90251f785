package inventory

// Group is a display grouping of batches sharing a med_code. The name comes
// from the first batch seen for the code.
type Group struct {
	MedCode string      `json:"med_code"`
	Name    string      `json:"name"`
	Batches []*Medicine `json:"batches"`
}

// GroupByCode groups batches by med_code. Codes appear in first-seen order
// and each group's batches keep their original relative order, so the output
// is deterministic for a given input sequence.
func GroupByCode(batches []*Medicine) []*Group {
	index := make(map[string]*Group)
	var groups []*Group

	for _, b := range batches {
		g, ok := index[b.MedCode]
		if !ok {
			g = &Group{MedCode: b.MedCode, Name: b.Name}
			index[b.MedCode] = g
			groups = append(groups, g)
		}
		g.Batches = append(g.Batches, b)
	}
	return groups
}
