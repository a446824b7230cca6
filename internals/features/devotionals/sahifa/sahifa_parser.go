// file: internals/features/devotionals/sahifa/sahifa_parser.go
package sahifa

import (
	"regexp"
	"strconv"
	"strings"
)

// Parser HTML ringan khusus format halaman erfan.ir:
// teks dipisah penanda bernomor "(n) <arab> (n) <persia>", nomor yang sama
// dipakai dua kali untuk pasangan Arab/terjemahan.

var (
	scriptRe  = regexp.MustCompile(`(?is)<script.*?</script>`)
	styleRe   = regexp.MustCompile(`(?is)<style.*?</style>`)
	tagRe     = regexp.MustCompile(`<[^>]+>`)
	entityRe  = regexp.MustCompile(`&#(\d+);`)
	spacesRe  = regexp.MustCompile(`\s+`)
	markerRe  = regexp.MustCompile(`\(\s*(\d+)\s*\)`)
	longNumRe = regexp.MustCompile(`\d{5,}.*$`)
)

// pola footer/noise di akhir halaman sumber
var footerRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)مشاهده شرح.*`),
	regexp.MustCompile(`(?i)کلیه حقوق.*`),
	regexp.MustCompile(`(?i)پایگاه اطلاع.*`),
	regexp.MustCompile(`(?i)پست الکترونیک.*`),
	regexp.MustCompile(`(?i)تلفن\s*:?\s*\d.*`),
	regexp.MustCompile(`(?i)info@.*`),
	regexp.MustCompile(`(?i)Icon.*`),
}

func decodeHTMLEntities(v string) string {
	v = entityRe.ReplaceAllStringFunc(v, func(m string) string {
		sub := entityRe.FindStringSubmatch(m)
		code, err := strconv.Atoi(sub[1])
		if err != nil {
			return ""
		}
		return string(rune(code))
	})
	r := strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	return r.Replace(v)
}

func stripFooterNoise(v string) string {
	cleaned := v
	for _, re := range footerRes {
		if loc := re.FindStringIndex(cleaned); loc != nil {
			cleaned = cleaned[:loc[0]]
		}
	}
	// buang deretan digit panjang di ekor (mis. nomor telepon)
	cleaned = longNumRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

func cleanText(raw string) string {
	noTags := scriptRe.ReplaceAllString(raw, " ")
	noTags = styleRe.ReplaceAllString(noTags, " ")
	noTags = tagRe.ReplaceAllString(noTags, " ")
	return strings.TrimSpace(spacesRe.ReplaceAllString(decodeHTMLEntities(noTags), " "))
}

// parseVersesFromHTML memecah teks jadi pasangan (arab, terjemahan) per nomor.
func parseVersesFromHTML(html string) []Verse {
	text := cleanText(html)

	markers := markerRe.FindAllStringSubmatchIndex(text, -1)
	if len(markers) == 0 {
		return nil
	}

	type seg struct {
		num  int
		body string
	}
	segs := make([]seg, 0, len(markers))
	for i, m := range markers {
		num, _ := strconv.Atoi(text[m[2]:m[3]])
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		segs = append(segs, seg{num: num, body: strings.TrimSpace(text[m[1]:end])})
	}

	// pasangkan segmen bernomor sama: yang pertama Arab, yang kedua Persia
	var verses []Verse
	for i := 0; i+1 < len(segs); {
		if segs[i].num == segs[i+1].num {
			arabic := stripFooterNoise(segs[i].body)
			translation := stripFooterNoise(segs[i+1].body)
			if arabic != "" || translation != "" {
				verses = append(verses, Verse{Arabic: arabic, Translation: translation})
			}
			i += 2
			continue
		}
		i++
	}
	return verses
}
