package term

// UsedNames returns every name mentioned anywhere in t, bound or free.
func UsedNames(t Term) map[Var]struct{} {
	used := make(map[Var]struct{})
	collectUsedNames(t, used)
	return used
}

func collectUsedNames(t Term, used map[Var]struct{}) {
	switch n := t.(type) {
	case Variable:
		used[n.Name] = struct{}{}
	case Lambda:
		used[n.Arg] = struct{}{}
		collectUsedNames(n.Body, used)
	case Apply:
		collectUsedNames(n.T1, used)
		collectUsedNames(n.T2, used)
	}
}

// Fresh returns the lexicographically-first one-letter identifier a..z not
// in used; if the whole alphabet is taken it continues a1, b1, ..., z1,
// a2, .... Termination is guaranteed because used is finite and the
// suffixed alphabet is unbounded.
func Fresh(used map[Var]struct{}) Var {
	for c := 'a'; c <= 'z'; c++ {
		v := string(c)
		if _, ok := used[v]; !ok {
			return v
		}
	}
	for suffix := 1; ; suffix++ {
		for c := 'a'; c <= 'z'; c++ {
			v := string(c) + itoa(suffix)
			if _, ok := used[v]; !ok {
				return v
			}
		}
	}
}

// itoa avoids pulling in strconv for a single tiny integer-to-decimal
// conversion used only by Fresh's overflow path.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// FreshFor returns a single name not used anywhere in t.
func FreshFor(t Term) Var {
	return Fresh(UsedNames(t))
}

// Rename returns a copy of t with every free occurrence of old replaced by
// new. A Lambda whose own Arg is old shadows old in its body, so the body
// is left untouched.
func Rename(t Term, old, new Var) Term {
	switch n := t.(type) {
	case Variable:
		if n.Name == old {
			return Variable{Name: new}
		}
		return n
	case Lambda:
		if n.Arg == old {
			return n
		}
		return Lambda{Arg: n.Arg, Body: Rename(n.Body, old, new)}
	case Apply:
		return Apply{T1: Rename(n.T1, old, new), T2: Rename(n.T2, old, new)}
	}
	return t
}

// Substitute returns the capture-avoiding substitution of rhs for old in t.
func Substitute(t Term, old Var, rhs Term) Term {
	switch n := t.(type) {
	case Variable:
		if n.Name == old {
			return rhs
		}
		return n
	case Lambda:
		if n.Arg == old {
			return n
		}
		avoid := UsedNames(t)
		for name := range UsedNames(rhs) {
			avoid[name] = struct{}{}
		}
		avoid[old] = struct{}{}
		z := Fresh(avoid)
		renamedBody := Rename(n.Body, n.Arg, z)
		return Lambda{Arg: z, Body: Substitute(renamedBody, old, rhs)}
	case Apply:
		return Apply{T1: Substitute(n.T1, old, rhs), T2: Substitute(n.T2, old, rhs)}
	}
	return t
}
