package feature

// Labels tracks the generated indicators in output column order along with a lookup
// from each source feature to its indicators.
type Labels struct {
	byFeature map[string][]int
	labels    []*Indicator
}

func NewLabels(labels []*Indicator) *Labels {
	byFeature := make(map[string][]int)
	for i := 0; i < len(labels); i++ {
		byFeature[labels[i].Name] = append(byFeature[labels[i].Name], i)
	}
	fl := &Labels{
		labels:    labels,
		byFeature: byFeature,
	}
	return fl
}

func (f *Labels) Len() int {
	return len(f.labels)
}

func (f *Labels) Labels() []*Indicator {
	labels := make([]*Indicator, len(f.labels))
	copy(labels, f.labels)
	return labels
}

// Levels returns the level indicators of a source feature excluding its missing
// indicator
func (f *Labels) Levels(name string) []*Indicator {
	var res []*Indicator
	for _, i := range f.byFeature[name] {
		if f.labels[i].IsMissing() {
			continue
		}
		res = append(res, f.labels[i])
	}
	return res
}

// Missing returns the missing indicator of a source feature if one was generated
func (f *Labels) Missing(name string) (*Indicator, bool) {
	for _, i := range f.byFeature[name] {
		if f.labels[i].IsMissing() {
			return f.labels[i], true
		}
	}
	return nil, false
}
