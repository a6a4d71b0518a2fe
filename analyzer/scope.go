package analyzer

// frame is a set of names bound by one scope, a barrier frame hides all frames below it
type frame struct {
	names   map[string]bool
	barrier bool
}

// scope represents shadow scope stack, names bound in active frames hide same named fields
type scope struct {
	frames []frame
}

// replace activates names as the only shadowing names while fn runs
func (s *scope) replace(names []string, fn func() error) error {
	return s.push(names, true, fn)
}

// enter activates names on top of the active ones while fn runs
func (s *scope) enter(names []string, fn func() error) error {
	return s.push(names, false, fn)
}

func (s *scope) push(names []string, barrier bool, fn func() error) error {
	f := frame{names: make(map[string]bool, len(names)), barrier: barrier}
	for _, name := range names {
		f.names[name] = true
	}
	depth := len(s.frames)
	s.frames = append(s.frames, f)
	defer func() { s.frames = s.frames[:depth] }()
	return fn()
}

// shadows reports whether name is bound by an active frame
func (s *scope) shadows(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].names[name] {
			return true
		}
		if s.frames[i].barrier {
			return false
		}
	}
	return false
}

func (s *scope) depth() int {
	return len(s.frames)
}

func (s *scope) reset() {
	s.frames = nil
}
