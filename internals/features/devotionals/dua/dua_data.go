// file: internals/features/devotionals/dua/dua_data.go
package dua

// Item adalah satu teks dua/salawat statis (ruang konten satu unit).
type Item struct {
	Key         string  `json:"key"`
	Title       string  `json:"title"`
	Arabic      string  `json:"arabic"`
	Translation string  `json:"translation"`
	AudioURL    *string `json:"audio_url"`
}

const (
	KeySalawat       = "salawat"
	KeySalawatFatema = "salawat-fatema"
)

var Items = []Item{
	{
		Key:         KeySalawat,
		Title:       "صلوات",
		Arabic:      "اللَّهُمَّ صَلِّ عَلَىٰ مُحَمَّدٍ وَآلِ مُحَمَّدٍ",
		Translation: "خدایا بر محمد و خاندان محمد درود فرست.",
	},
	{
		Key:   KeySalawatFatema,
		Title: "صلوات حضرت فاطمه زهرا (س)",
		Arabic: "اَللّهُمَّ صَلِّ عَلى فاطِمَةَ وَ اَبيها وَ بَعْلِها وَ بَنيها" +
			" وَ السِّرِّ الْمُسْتَوْدَعِ فيها بِعَدَدِ ما اَحاطَ بِهِ عِلْمُكَ",
		Translation: "خداوندا، درود فرست بر فاطمه و پدرش و همسرش و پسرانش" +
			" و آن راز به ودیعه نهاده شده در او، به تعداد آنچه دانش تو بر آن احاطه دارد.",
	},
}

// ByKey mencari item berdasarkan kunci.
func ByKey(key string) (Item, bool) {
	for _, it := range Items {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// Options untuk dropdown admin (value + label).
func Options() []map[string]string {
	out := make([]map[string]string, 0, len(Items))
	for _, it := range Items {
		out = append(out, map[string]string{"value": it.Key, "label": it.Title})
	}
	return out
}
