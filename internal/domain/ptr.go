package domain

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
