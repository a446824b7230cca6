// file: internals/features/quran/catalog/surah_data.go
package catalog

// Surah adalah metadata satu surah (referensi statis, tidak pernah berubah).
type Surah struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	PersianName string `json:"persian_name"`
	Verses      int    `json:"verses"`
}

// Surahs: 114 surah beserta jumlah ayat (riwayat Hafs).
var Surahs = []Surah{
	{1, "Al-Fatiha", "حمد", 7},
	{2, "Al-Baqarah", "بقره", 286},
	{3, "Aal-E-Imran", "آل عمران", 200},
	{4, "An-Nisa", "نساء", 176},
	{5, "Al-Ma'idah", "مائده", 120},
	{6, "Al-An'am", "انعام", 165},
	{7, "Al-A'raf", "اعراف", 206},
	{8, "Al-Anfal", "انفال", 75},
	{9, "At-Tawbah", "توبه", 129},
	{10, "Yunus", "یونس", 109},
	{11, "Hud", "هود", 123},
	{12, "Yusuf", "یوسف", 111},
	{13, "Ar-Ra'd", "رعد", 43},
	{14, "Ibrahim", "ابراهیم", 52},
	{15, "Al-Hijr", "حجر", 99},
	{16, "An-Nahl", "نحل", 128},
	{17, "Al-Isra", "اسراء", 111},
	{18, "Al-Kahf", "کهف", 110},
	{19, "Maryam", "مریم", 98},
	{20, "Taha", "طه", 135},
	{21, "Al-Anbiya", "انبیاء", 112},
	{22, "Al-Hajj", "حج", 78},
	{23, "Al-Mu'minun", "مؤمنون", 118},
	{24, "An-Nur", "نور", 64},
	{25, "Al-Furqan", "فرقان", 77},
	{26, "Ash-Shu'ara", "شعراء", 227},
	{27, "An-Naml", "نمل", 93},
	{28, "Al-Qasas", "قصص", 88},
	{29, "Al-Ankabut", "عنکبوت", 69},
	{30, "Ar-Rum", "روم", 60},
	{31, "Luqman", "لقمان", 34},
	{32, "As-Sajdah", "سجده", 30},
	{33, "Al-Ahzab", "احزاب", 73},
	{34, "Saba", "سبأ", 54},
	{35, "Fatir", "فاطر", 45},
	{36, "Ya-Sin", "یس", 83},
	{37, "As-Saffat", "صافات", 182},
	{38, "Sad", "ص", 88},
	{39, "Az-Zumar", "زمر", 75},
	{40, "Ghafir", "غافر", 85},
	{41, "Fussilat", "فصلت", 54},
	{42, "Ash-Shura", "شوری", 53},
	{43, "Az-Zukhruf", "زخرف", 89},
	{44, "Ad-Dukhan", "دخان", 59},
	{45, "Al-Jathiyah", "جاثیه", 37},
	{46, "Al-Ahqaf", "احقاف", 35},
	{47, "Muhammad", "محمد", 38},
	{48, "Al-Fath", "فتح", 29},
	{49, "Al-Hujurat", "حجرات", 18},
	{50, "Qaf", "ق", 45},
	{51, "Adh-Dhariyat", "ذاریات", 60},
	{52, "At-Tur", "طور", 49},
	{53, "An-Najm", "نجم", 62},
	{54, "Al-Qamar", "قمر", 55},
	{55, "Ar-Rahman", "الرحمن", 78},
	{56, "Al-Waqi'ah", "واقعه", 96},
	{57, "Al-Hadid", "حدید", 29},
	{58, "Al-Mujadila", "مجادله", 22},
	{59, "Al-Hashr", "حشر", 24},
	{60, "Al-Mumtahanah", "ممتحنه", 13},
	{61, "As-Saff", "صف", 14},
	{62, "Al-Jumu'ah", "جمعه", 11},
	{63, "Al-Munafiqun", "منافقون", 11},
	{64, "At-Taghabun", "تغابن", 18},
	{65, "At-Talaq", "طلاق", 12},
	{66, "At-Tahrim", "تحریم", 12},
	{67, "Al-Mulk", "ملک", 30},
	{68, "Al-Qalam", "قلم", 52},
	{69, "Al-Haqqah", "حاقه", 52},
	{70, "Al-Ma'arij", "معارج", 44},
	{71, "Nuh", "نوح", 28},
	{72, "Al-Jinn", "جن", 28},
	{73, "Al-Muzzammil", "مزمل", 20},
	{74, "Al-Muddaththir", "مدثر", 56},
	{75, "Al-Qiyamah", "قیامت", 40},
	{76, "Al-Insan", "انسان", 31},
	{77, "Al-Mursalat", "مرسلات", 50},
	{78, "An-Naba", "نبأ", 40},
	{79, "An-Nazi'at", "نازعات", 46},
	{80, "Abasa", "عبس", 42},
	{81, "At-Takwir", "تکویر", 29},
	{82, "Al-Infitar", "انفطار", 19},
	{83, "Al-Mutaffifin", "مطففین", 36},
	{84, "Al-Inshiqaq", "انشقاق", 25},
	{85, "Al-Buruj", "بروج", 22},
	{86, "At-Tariq", "طارق", 17},
	{87, "Al-A'la", "اعلی", 19},
	{88, "Al-Ghashiyah", "غاشیه", 26},
	{89, "Al-Fajr", "فجر", 30},
	{90, "Al-Balad", "بلد", 20},
	{91, "Ash-Shams", "شمس", 15},
	{92, "Al-Layl", "لیل", 21},
	{93, "Ad-Duha", "ضحی", 11},
	{94, "Ash-Sharh", "شرح", 8},
	{95, "At-Tin", "تین", 8},
	{96, "Al-Alaq", "علق", 19},
	{97, "Al-Qadr", "قدر", 5},
	{98, "Al-Bayyinah", "بینه", 8},
	{99, "Az-Zalzalah", "زلزله", 8},
	{100, "Al-Adiyat", "عادیات", 11},
	{101, "Al-Qari'ah", "قارعه", 11},
	{102, "At-Takathur", "تکاثر", 8},
	{103, "Al-Asr", "عصر", 3},
	{104, "Al-Humazah", "همزه", 9},
	{105, "Al-Fil", "فیل", 5},
	{106, "Quraysh", "قریش", 4},
	{107, "Al-Ma'un", "ماعون", 7},
	{108, "Al-Kawthar", "کوثر", 3},
	{109, "Al-Kafirun", "کافرون", 6},
	{110, "An-Nasr", "نصر", 3},
	{111, "Al-Masad", "مسد", 5},
	{112, "Al-Ikhlas", "اخلاص", 4},
	{113, "Al-Falaq", "فلق", 5},
	{114, "An-Nas", "ناس", 6},
}
