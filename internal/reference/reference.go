// Package reference holds the static devotional content: names of Allah,
// dua collections, salah steps, and sunnah foods.
package reference

// Name is one of the names of Allah with its meaning.
type Name struct {
	Name    string
	Meaning string
}

// Dua is one supplication with transliteration and source reference.
type Dua struct {
	Arabic          string
	Transliteration string
	Translation     string
	Ref             string
}

// DuaCategory groups duas by occasion.
type DuaCategory struct {
	Category string
	Items    []Dua
}

// SalahStep is one ordered step in the prayer.
type SalahStep struct {
	Step  int
	Title string
	Desc  string
}

// Food is one prophetic food with its benefit and source.
type Food struct {
	Name    string
	Benefit string
	Ref     string
}

// AllahNames lists the names shown in the reference screen.
var AllahNames = []Name{
	{Name: "Ar-Rahman", Meaning: "The Beneficent"},
	{Name: "Ar-Raheem", Meaning: "The Merciful"},
	{Name: "Al-Malik", Meaning: "The King"},
	{Name: "Al-Quddus", Meaning: "The Most Holy"},
	{Name: "As-Salam", Meaning: "The Source of Peace"},
	{Name: "Al-Mu'min", Meaning: "The Guardian of Faith"},
	{Name: "Al-Muhaymin", Meaning: "The Protector"},
	{Name: "Al-Aziz", Meaning: "The Mighty"},
	{Name: "Al-Jabbar", Meaning: "The Compeller"},
	{Name: "Al-Mutakabbir", Meaning: "The Majestic"},
}

// Duas is the dua collection grouped by occasion.
var Duas = []DuaCategory{
	{
		Category: "Morning & Evening",
		Items: []Dua{
			{
				Arabic:          "الحَمْدُ لِلَّهِ الَّذِي أَحْيَانَا بَعْدَ مَا أمَاتَنَا وإِلَيْهِ النُّشُورُ",
				Transliteration: "Alhamdu lillahil-lathee ahyana ba'da ma amatana wa-ilayhin-nushoor",
				Translation:     "Praise is to Allah Who gave us life after He had caused us to die and unto Him is the resurrection.",
				Ref:             "Bukhari",
			},
			{
				Arabic:          "بِسْمِ اللهِ الَّذِي لَا يَضُرُّ مَعَ اسْمِهِ شَيْءٌ فِي الْأَرْضِ وَلَا فِي السَّمَاءِ وَهُوَ السَّمِيعُ الْعَلِيمُ",
				Transliteration: "Bismillahil-lathee la yadurru ma'as-mihi shay'un fil-ardi wala fis-sama'i wahuwas-samee'ul-'aleem",
				Translation:     "In the Name of Allah with Whose Name there is protection against every kind of harm in the earth or in the heaven, and He is the All-Hearing and All-Knowing.",
				Ref:             "Abu Dawud",
			},
		},
	},
	{
		Category: "Travel",
		Items: []Dua{
			{
				Arabic:          "سُبْحَانَ الَّذِي سَخَّرَ لَنَا هَذَا وَمَا كُنَّا لَهُ مُقْرِنِينَ وَإِنَّا إِلَى رَبِّنَا لَمُنْقَلِبُونَ",
				Transliteration: "Subhanal-lathee sakhkhara lana hatha wama kunna lahu muqrineen, wa inna ila rabbina lamunqaliboon",
				Translation:     "Glory to Him who has subjected this to us, and we could never have it (by our efforts). And verily, to Our Lord we shall return.",
				Ref:             "Quran 43:13-14",
			},
		},
	},
	{
		Category: "Distress",
		Items: []Dua{
			{
				Arabic:          "لَا إِلَهَ إِلَّا أَنْتَ سُبْحَانَكَ إِنِّي كُنْتُ مِنَ الظَّالِمِينَ",
				Transliteration: "La ilaha illa anta subhanaka innee kuntu minaz-zalimeen",
				Translation:     "There is no deity but You. Glory be to You! Verily, I have been among the wrongdoers.",
				Ref:             "Quran 21:87",
			},
			{
				Arabic:          "يَا حَيُّ يَا قَيُّومُ بِرَحْمَتِكَ أَسْتَغِيثُ",
				Transliteration: "Ya Hayyu Ya Qayyoom bi-rahmatika astagheeth",
				Translation:     "O Ever Living One, O Eternal One, by Your mercy I call on You to set right all my affairs.",
				Ref:             "Tirmidhi",
			},
		},
	},
}

// SalahSteps lists the eight steps of prayer in order.
var SalahSteps = []SalahStep{
	{Step: 1, Title: "Takbiratul Ihram", Desc: "Raise hands to ears and say 'Allahu Akbar' (Allah is Greatest), focusing your heart on prayer."},
	{Step: 2, Title: "Qiyam (Standing)", Desc: "Place right hand over left on chest/navel. Recite Al-Fatiha and another Surah."},
	{Step: 3, Title: "Ruku (Bowing)", Desc: "Say 'Allahu Akbar' and bow, hands on knees, back straight. Say 'Subhana Rabbiyal Azeem' 3x."},
	{Step: 4, Title: "I'tidal (Rising)", Desc: "Rise saying 'Sami Allahu liman hamidah', then 'Rabbana walakal hamd'."},
	{Step: 5, Title: "Sujud (Prostration)", Desc: "Prostrate on 7 bones (forehead, nose, palms, knees, toes). Say 'Subhana Rabbiyal A'la' 3x."},
	{Step: 6, Title: "Jalsa (Sitting)", Desc: "Sit between two prostrations. Say 'Rabbighfir lee'."},
	{Step: 7, Title: "Tashahhud", Desc: "In final sitting, recite Tashahhud and Salawat upon the Prophet (PBUH)."},
	{Step: 8, Title: "Tasleem", Desc: "Turn head right then left saying 'Assalamu alaykum wa rahmatullah'."},
}

// SunnahFoods lists the prophetic foods shown in the reference screen.
var SunnahFoods = []Food{
	{Name: "Dates (Tamr)", Benefit: "The Prophet (PBUH) said a house without dates has no food. Great for energy and digestion.", Ref: "Muslim"},
	{Name: "Honey", Benefit: "Described in the Quran as a 'healing for mankind'. Boosts immunity.", Ref: "Quran 16:69"},
	{Name: "Olive Oil", Benefit: "From a 'blessed tree'. Good for heart health and skin.", Ref: "Tirmidhi"},
	{Name: "Black Seed (Nigella Sativa)", Benefit: "'A cure for every disease except death.' Anti-inflammatory.", Ref: "Bukhari"},
	{Name: "Milk", Benefit: "The Prophet (PBUH) loved milk. It provides calcium and hydration.", Ref: "Ibn Majah"},
	{Name: "Pomegranate", Benefit: "Mentioned in the Quran. High in antioxidants.", Ref: "Quran 55:68"},
	{Name: "Vinegar", Benefit: "The Prophet (PBUH) called it a 'blessed condiment'. Helps blood sugar.", Ref: "Muslim"},
	{Name: "Barley (Talbina)", Benefit: "Soothing for the heart and relieves sadness.", Ref: "Bukhari"},
}
