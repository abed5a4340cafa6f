package classify

var commonGarbage = map[string]struct{}{
	"lo": {}, "ur": {}, "mn": {}, "nonsense_word": {}, "n/a": {}, "na": {},
	"idk": {}, "lol": {}, "asdf": {}, "jk": {}, "zz": {}, "zzz": {},
	"k": {}, "j": {}, "hi": {}, "n": {}, "id": {}, "blah": {}, "huh": {},
	"wut": {}, "lmao": {}, "wat": {}, "hm": {}, "hmm": {}, "fml": {},
	"shit": {}, "fuck": {},
}

// IsCommonGarbage reports whether token is a filler, interjection or
// profanity that carries no answer content, regardless of whether it is
// also a dictionary word.
func IsCommonGarbage(token string) bool {
	_, ok := commonGarbage[token]
	return ok
}
