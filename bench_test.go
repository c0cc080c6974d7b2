package versort

import (
	"math/rand"
	"strconv"
	"testing"
)

// Global sink to avoid compiler eliminating results.
var benchResult []string

// makeTags generates a mixed dataset: full semver with optional pre/build,
// release shorthands, counter suffixes, and junk. Distribution tuned for
// realistic tag-list noise.
func makeTags(n int, junk bool) []string {
	r := rand.New(rand.NewSource(1)) // deterministic
	out := make([]string, n)

	for i := 0; i < n; i++ {
		maj := r.Intn(20)
		min := r.Intn(30)
		pat := r.Intn(50)

		switch x := r.Intn(100); {
		case x < 50: // full X.Y.Z with optional pre/build
			s := strconv.Itoa(maj) + "." + strconv.Itoa(min) + "." + strconv.Itoa(pat)

			if r.Intn(100) < 30 {
				kind := []string{"alpha", "beta", "rc"}[r.Intn(3)]
				s += "-" + kind + "." + strconv.Itoa(r.Intn(12))
			}

			if r.Intn(100) < 20 {
				s += "+build." + strconv.Itoa(r.Intn(100))
			}

			if r.Intn(100) < 20 {
				s = "v" + s
			}
			out[i] = s

		case x < 80: // shorthand X / X.Y
			if r.Intn(2) == 0 {
				out[i] = strconv.Itoa(maj)
			} else {
				out[i] = strconv.Itoa(maj) + "." + strconv.Itoa(min)
			}

		case x < 90: // counter suffix
			out[i] = strconv.Itoa(maj) + "." + strconv.Itoa(min) + string(rune('a'+r.Intn(26)))

		default:
			if junk {
				out[i] = "nightly-" + strconv.Itoa(r.Intn(1000))
			} else {
				out[i] = strconv.Itoa(maj) + "." + strconv.Itoa(min)
			}
		}
	}

	return out
}

func BenchmarkSort(b *testing.B) {
	in := makeTags(10_000, true)
	opt := Options{IgnoreUnparsable: true, Counter: true}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		out, err := Sort(in, opt)
		if err != nil {
			b.Fatal(err)
		}
		benchResult = out
	}
}

func BenchmarkSortClean(b *testing.B) {
	in := makeTags(10_000, false)
	opt := Options{Counter: true}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		out, err := Sort(in, opt)
		if err != nil {
			b.Fatal(err)
		}
		benchResult = out
	}
}

func BenchmarkParse(b *testing.B) {
	in := makeTags(1_000, false)
	opt := Options{Counter: true}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, s := range in {
			if _, err := Parse(s, opt); err != nil {
				b.Fatal(err)
			}
		}
	}
}
