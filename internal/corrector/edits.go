package corrector

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// edits1 calls visit with every string one edit away from word, in a fixed
// order: deletions, adjacent transpositions, substitutions, insertions.
// Duplicates are not removed.
func edits1(word string, visit func(string)) {
	r := []rune(word)
	n := len(r)
	buf := make([]rune, 0, n+1)

	for i := 0; i < n; i++ {
		buf = append(append(buf[:0], r[:i]...), r[i+1:]...)
		visit(string(buf))
	}
	for i := 0; i+1 < n; i++ {
		buf = append(buf[:0], r...)
		buf[i], buf[i+1] = buf[i+1], buf[i]
		visit(string(buf))
	}
	for i := 0; i < n; i++ {
		buf = append(buf[:0], r...)
		for _, c := range alphabet {
			buf[i] = c
			visit(string(buf))
		}
	}
	for i := 0; i <= n; i++ {
		for _, c := range alphabet {
			buf = append(append(append(buf[:0], r[:i]...), c), r[i:]...)
			visit(string(buf))
		}
	}
}

// Edits1 returns the distinct strings one edit away from word in
// generation order.
func Edits1(word string) []string {
	seen := make(map[string]struct{})
	var out []string
	edits1(word, func(e string) {
		if _, ok := seen[e]; ok {
			return
		}
		seen[e] = struct{}{}
		out = append(out, e)
	})
	return out
}

// best tracks the highest-count candidate; the first one seen wins ties.
type best struct {
	word  string
	count int
	found bool
}

func (b *best) offer(word string, count int) {
	if !b.found || count > b.count {
		b.word, b.count, b.found = word, count, true
	}
}

func (ft *FrequencyTable) bestEdit1(word string) best {
	var b best
	edits1(word, func(e string) {
		if n, ok := ft.counts[e]; ok {
			b.offer(e, n)
		}
	})
	return b
}

func (ft *FrequencyTable) bestEdit2(word string) best {
	var b best
	edits1(word, func(e1 string) {
		edits1(e1, func(e2 string) {
			if n, ok := ft.counts[e2]; ok {
				b.offer(e2, n)
			}
		})
	})
	return b
}
