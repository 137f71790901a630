package usecase

// The helpers below never modify their input slice.

func indexOf(refs []string, id string) int {
	for i, ref := range refs {
		if ref == id {
			return i
		}
	}
	return -1
}

// appendUnique appends id unless it is already present.
func appendUnique(refs []string, id string) ([]string, bool) {
	if indexOf(refs, id) != -1 {
		return refs, false
	}
	out := make([]string, 0, len(refs)+1)
	out = append(out, refs...)
	return append(out, id), true
}

// removeRef drops the first occurrence of id.
func removeRef(refs []string, id string) ([]string, bool) {
	i := indexOf(refs, id)
	if i == -1 {
		return refs, false
	}
	out := make([]string, 0, len(refs)-1)
	out = append(out, refs[:i]...)
	return append(out, refs[i+1:]...), true
}

// moveToFront puts id first, removing an earlier occurrence if any.
func moveToFront(refs []string, id string) []string {
	rest, _ := removeRef(refs, id)
	out := make([]string, 0, len(rest)+1)
	out = append(out, id)
	return append(out, rest...)
}
