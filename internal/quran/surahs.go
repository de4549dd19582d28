package quran

// Surahs lists all 114 chapters in canonical order.
var Surahs = []Surah{
	{Number: 1, Name: "Al-Fatiha", EnglishName: "Al-Fatiha", Meaning: "The Opening", AyahCount: 7, Revelation: Mecca},
	{Number: 2, Name: "Al-Baqarah", EnglishName: "Al-Baqarah", Meaning: "The Cow", AyahCount: 286, Revelation: Medina},
	{Number: 3, Name: "Al-Imran", EnglishName: "Aal-E-Imran", Meaning: "The Family of Imran", AyahCount: 200, Revelation: Medina},
	{Number: 4, Name: "An-Nisa", EnglishName: "An-Nisa", Meaning: "The Women", AyahCount: 176, Revelation: Medina},
	{Number: 5, Name: "Al-Ma'idah", EnglishName: "Al-Ma'idah", Meaning: "The Table Spread", AyahCount: 120, Revelation: Medina},
	{Number: 6, Name: "Al-An'am", EnglishName: "Al-An'am", Meaning: "The Cattle", AyahCount: 165, Revelation: Mecca},
	{Number: 7, Name: "Al-A'raf", EnglishName: "Al-A'raf", Meaning: "The Heights", AyahCount: 206, Revelation: Mecca},
	{Number: 8, Name: "Al-Anfal", EnglishName: "Al-Anfal", Meaning: "The Spoils of War", AyahCount: 75, Revelation: Medina},
	{Number: 9, Name: "At-Tawbah", EnglishName: "At-Tawbah", Meaning: "The Repentance", AyahCount: 129, Revelation: Medina},
	{Number: 10, Name: "Yunus", EnglishName: "Yunus", Meaning: "Jonah", AyahCount: 109, Revelation: Mecca},
	{Number: 11, Name: "Hud", EnglishName: "Hud", Meaning: "Hud", AyahCount: 123, Revelation: Mecca},
	{Number: 12, Name: "Yusuf", EnglishName: "Yusuf", Meaning: "Joseph", AyahCount: 111, Revelation: Mecca},
	{Number: 13, Name: "Ar-Ra'd", EnglishName: "Ar-Ra'd", Meaning: "The Thunder", AyahCount: 43, Revelation: Medina},
	{Number: 14, Name: "Ibrahim", EnglishName: "Ibrahim", Meaning: "Abraham", AyahCount: 52, Revelation: Mecca},
	{Number: 15, Name: "Al-Hijr", EnglishName: "Al-Hijr", Meaning: "The Rocky Tract", AyahCount: 99, Revelation: Mecca},
	{Number: 16, Name: "An-Nahl", EnglishName: "An-Nahl", Meaning: "The Bee", AyahCount: 128, Revelation: Mecca},
	{Number: 17, Name: "Al-Isra", EnglishName: "Al-Isra", Meaning: "The Night Journey", AyahCount: 111, Revelation: Mecca},
	{Number: 18, Name: "Al-Kahf", EnglishName: "Al-Kahf", Meaning: "The Cave", AyahCount: 110, Revelation: Mecca},
	{Number: 19, Name: "Maryam", EnglishName: "Maryam", Meaning: "Mary", AyahCount: 98, Revelation: Mecca},
	{Number: 20, Name: "Ta-Ha", EnglishName: "Ta-Ha", Meaning: "Ta-Ha", AyahCount: 135, Revelation: Mecca},
	{Number: 21, Name: "Al-Anbiya", EnglishName: "Al-Anbiya", Meaning: "The Prophets", AyahCount: 112, Revelation: Mecca},
	{Number: 22, Name: "Al-Hajj", EnglishName: "Al-Hajj", Meaning: "The Pilgrimage", AyahCount: 78, Revelation: Medina},
	{Number: 23, Name: "Al-Mu'minun", EnglishName: "Al-Mu'minun", Meaning: "The Believers", AyahCount: 118, Revelation: Mecca},
	{Number: 24, Name: "An-Nur", EnglishName: "An-Nur", Meaning: "The Light", AyahCount: 64, Revelation: Medina},
	{Number: 25, Name: "Al-Furqan", EnglishName: "Al-Furqan", Meaning: "The Criterion", AyahCount: 77, Revelation: Mecca},
	{Number: 26, Name: "Ash-Shu'ara", EnglishName: "Ash-Shu'ara", Meaning: "The Poets", AyahCount: 227, Revelation: Mecca},
	{Number: 27, Name: "An-Naml", EnglishName: "An-Naml", Meaning: "The Ant", AyahCount: 93, Revelation: Mecca},
	{Number: 28, Name: "Al-Qasas", EnglishName: "Al-Qasas", Meaning: "The Stories", AyahCount: 88, Revelation: Mecca},
	{Number: 29, Name: "Al-Ankabut", EnglishName: "Al-Ankabut", Meaning: "The Spider", AyahCount: 69, Revelation: Mecca},
	{Number: 30, Name: "Ar-Rum", EnglishName: "Ar-Rum", Meaning: "The Romans", AyahCount: 60, Revelation: Mecca},
	{Number: 31, Name: "Luqman", EnglishName: "Luqman", Meaning: "Luqman", AyahCount: 34, Revelation: Mecca},
	{Number: 32, Name: "As-Sajdah", EnglishName: "As-Sajdah", Meaning: "The Prostration", AyahCount: 30, Revelation: Mecca},
	{Number: 33, Name: "Al-Ahzab", EnglishName: "Al-Ahzab", Meaning: "The Combined Forces", AyahCount: 73, Revelation: Medina},
	{Number: 34, Name: "Saba", EnglishName: "Saba", Meaning: "Sheba", AyahCount: 54, Revelation: Mecca},
	{Number: 35, Name: "Fatir", EnglishName: "Fatir", Meaning: "Originator", AyahCount: 45, Revelation: Mecca},
	{Number: 36, Name: "Ya-Sin", EnglishName: "Ya-Sin", Meaning: "Ya Sin", AyahCount: 83, Revelation: Mecca},
	{Number: 37, Name: "As-Saffat", EnglishName: "As-Saffat", Meaning: "Those Who Set The Ranks", AyahCount: 182, Revelation: Mecca},
	{Number: 38, Name: "Sad", EnglishName: "Sad", Meaning: "The Letter 'Saad'", AyahCount: 88, Revelation: Mecca},
	{Number: 39, Name: "Az-Zumar", EnglishName: "Az-Zumar", Meaning: "The Troops", AyahCount: 75, Revelation: Mecca},
	{Number: 40, Name: "Ghafir", EnglishName: "Ghafir", Meaning: "The Forgiver", AyahCount: 85, Revelation: Mecca},
	{Number: 41, Name: "Fussilat", EnglishName: "Fussilat", Meaning: "Explained in Detail", AyahCount: 54, Revelation: Mecca},
	{Number: 42, Name: "Ash-Shura", EnglishName: "Ash-Shura", Meaning: "The Consultation", AyahCount: 53, Revelation: Mecca},
	{Number: 43, Name: "Az-Zukhruf", EnglishName: "Az-Zukhruf", Meaning: "The Ornaments of Gold", AyahCount: 89, Revelation: Mecca},
	{Number: 44, Name: "Ad-Dukhan", EnglishName: "Ad-Dukhan", Meaning: "The Smoke", AyahCount: 59, Revelation: Mecca},
	{Number: 45, Name: "Al-Jathiyah", EnglishName: "Al-Jathiyah", Meaning: "The Crouching", AyahCount: 37, Revelation: Mecca},
	{Number: 46, Name: "Al-Ahqaf", EnglishName: "Al-Ahqaf", Meaning: "The Wind-Curved Sandhills", AyahCount: 35, Revelation: Mecca},
	{Number: 47, Name: "Muhammad", EnglishName: "Muhammad", Meaning: "Muhammad", AyahCount: 38, Revelation: Medina},
	{Number: 48, Name: "Al-Fath", EnglishName: "Al-Fath", Meaning: "The Victory", AyahCount: 29, Revelation: Medina},
	{Number: 49, Name: "Al-Hujurat", EnglishName: "Al-Hujurat", Meaning: "The Rooms", AyahCount: 18, Revelation: Medina},
	{Number: 50, Name: "Qaf", EnglishName: "Qaf", Meaning: "The Letter 'Qaf'", AyahCount: 45, Revelation: Mecca},
	{Number: 51, Name: "Ad-Dhariyat", EnglishName: "Ad-Dhariyat", Meaning: "The Winnowing Winds", AyahCount: 60, Revelation: Mecca},
	{Number: 52, Name: "At-Tur", EnglishName: "At-Tur", Meaning: "The Mount", AyahCount: 49, Revelation: Mecca},
	{Number: 53, Name: "An-Najm", EnglishName: "An-Najm", Meaning: "The Star", AyahCount: 62, Revelation: Mecca},
	{Number: 54, Name: "Al-Qamar", EnglishName: "Al-Qamar", Meaning: "The Moon", AyahCount: 55, Revelation: Mecca},
	{Number: 55, Name: "Ar-Rahman", EnglishName: "Ar-Rahman", Meaning: "The Beneficent", AyahCount: 78, Revelation: Medina},
	{Number: 56, Name: "Al-Waqi'ah", EnglishName: "Al-Waqi'ah", Meaning: "The Inevitable", AyahCount: 96, Revelation: Mecca},
	{Number: 57, Name: "Al-Hadid", EnglishName: "Al-Hadid", Meaning: "The Iron", AyahCount: 29, Revelation: Medina},
	{Number: 58, Name: "Al-Mujadila", EnglishName: "Al-Mujadila", Meaning: "The Pleading Woman", AyahCount: 22, Revelation: Medina},
	{Number: 59, Name: "Al-Hashr", EnglishName: "Al-Hashr", Meaning: "The Exile", AyahCount: 24, Revelation: Medina},
	{Number: 60, Name: "Al-Mumtahanah", EnglishName: "Al-Mumtahanah", Meaning: "She That Is To Be Examined", AyahCount: 13, Revelation: Medina},
	{Number: 61, Name: "As-Saff", EnglishName: "As-Saff", Meaning: "The Ranks", AyahCount: 14, Revelation: Medina},
	{Number: 62, Name: "Al-Jumu'ah", EnglishName: "Al-Jumu'ah", Meaning: "The Congregation, Friday", AyahCount: 11, Revelation: Medina},
	{Number: 63, Name: "Al-Munafiqun", EnglishName: "Al-Munafiqun", Meaning: "The Hypocrites", AyahCount: 11, Revelation: Medina},
	{Number: 64, Name: "At-Taghabun", EnglishName: "At-Taghabun", Meaning: "The Mutual Disillusion", AyahCount: 18, Revelation: Medina},
	{Number: 65, Name: "At-Talaq", EnglishName: "At-Talaq", Meaning: "The Divorce", AyahCount: 12, Revelation: Medina},
	{Number: 66, Name: "At-Tahrim", EnglishName: "At-Tahrim", Meaning: "The Prohibition", AyahCount: 12, Revelation: Medina},
	{Number: 67, Name: "Al-Mulk", EnglishName: "Al-Mulk", Meaning: "The Sovereignty", AyahCount: 30, Revelation: Mecca},
	{Number: 68, Name: "Al-Qalam", EnglishName: "Al-Qalam", Meaning: "The Pen", AyahCount: 52, Revelation: Mecca},
	{Number: 69, Name: "Al-Haqqah", EnglishName: "Al-Haqqah", Meaning: "The Reality", AyahCount: 52, Revelation: Mecca},
	{Number: 70, Name: "Al-Ma'arij", EnglishName: "Al-Ma'arij", Meaning: "The Ascending Stairways", AyahCount: 44, Revelation: Mecca},
	{Number: 71, Name: "Nuh", EnglishName: "Nuh", Meaning: "Noah", AyahCount: 28, Revelation: Mecca},
	{Number: 72, Name: "Al-Jinn", EnglishName: "Al-Jinn", Meaning: "The Jinn", AyahCount: 28, Revelation: Mecca},
	{Number: 73, Name: "Al-Muzzammil", EnglishName: "Al-Muzzammil", Meaning: "The Enshrouded One", AyahCount: 20, Revelation: Mecca},
	{Number: 74, Name: "Al-Muddaththir", EnglishName: "Al-Muddaththir", Meaning: "The Cloaked One", AyahCount: 56, Revelation: Mecca},
	{Number: 75, Name: "Al-Qiyamah", EnglishName: "Al-Qiyamah", Meaning: "The Resurrection", AyahCount: 40, Revelation: Mecca},
	{Number: 76, Name: "Al-Insan", EnglishName: "Al-Insan", Meaning: "The Man", AyahCount: 31, Revelation: Medina},
	{Number: 77, Name: "Al-Mursalat", EnglishName: "Al-Mursalat", Meaning: "The Emissaries", AyahCount: 50, Revelation: Mecca},
	{Number: 78, Name: "An-Naba", EnglishName: "An-Naba", Meaning: "The Tidings", AyahCount: 40, Revelation: Mecca},
	{Number: 79, Name: "An-Nazi'at", EnglishName: "An-Nazi'at", Meaning: "Those Who Drag Forth", AyahCount: 46, Revelation: Mecca},
	{Number: 80, Name: "Abasa", EnglishName: "Abasa", Meaning: "He Frowned", AyahCount: 42, Revelation: Mecca},
	{Number: 81, Name: "At-Takwir", EnglishName: "At-Takwir", Meaning: "The Overthrowing", AyahCount: 29, Revelation: Mecca},
	{Number: 82, Name: "Al-Infitar", EnglishName: "Al-Infitar", Meaning: "The Cleaving", AyahCount: 19, Revelation: Mecca},
	{Number: 83, Name: "Al-Mutaffifin", EnglishName: "Al-Mutaffifin", Meaning: "The Defrauding", AyahCount: 36, Revelation: Mecca},
	{Number: 84, Name: "Al-Inshiqaq", EnglishName: "Al-Inshiqaq", Meaning: "The Sundering", AyahCount: 25, Revelation: Mecca},
	{Number: 85, Name: "Al-Buruj", EnglishName: "Al-Buruj", Meaning: "The Mansions of the Stars", AyahCount: 22, Revelation: Mecca},
	{Number: 86, Name: "At-Tariq", EnglishName: "At-Tariq", Meaning: "The Morning Star", AyahCount: 17, Revelation: Mecca},
	{Number: 87, Name: "Al-A'la", EnglishName: "Al-A'la", Meaning: "The Most High", AyahCount: 19, Revelation: Mecca},
	{Number: 88, Name: "Al-Ghashiyah", EnglishName: "Al-Ghashiyah", Meaning: "The Overwhelming", AyahCount: 26, Revelation: Mecca},
	{Number: 89, Name: "Al-Fajr", EnglishName: "Al-Fajr", Meaning: "The Dawn", AyahCount: 30, Revelation: Mecca},
	{Number: 90, Name: "Al-Balad", EnglishName: "Al-Balad", Meaning: "The City", AyahCount: 20, Revelation: Mecca},
	{Number: 91, Name: "Ash-Shams", EnglishName: "Ash-Shams", Meaning: "The Sun", AyahCount: 15, Revelation: Mecca},
	{Number: 92, Name: "Al-Lail", EnglishName: "Al-Lail", Meaning: "The Night", AyahCount: 21, Revelation: Mecca},
	{Number: 93, Name: "Ad-Duha", EnglishName: "Ad-Duha", Meaning: "The Morning Hours", AyahCount: 11, Revelation: Mecca},
	{Number: 94, Name: "Ash-Sharh", EnglishName: "Ash-Sharh", Meaning: "The Relief", AyahCount: 8, Revelation: Mecca},
	{Number: 95, Name: "At-Tin", EnglishName: "At-Tin", Meaning: "The Fig", AyahCount: 8, Revelation: Mecca},
	{Number: 96, Name: "Al-Alaq", EnglishName: "Al-Alaq", Meaning: "The Clot", AyahCount: 19, Revelation: Mecca},
	{Number: 97, Name: "Al-Qadr", EnglishName: "Al-Qadr", Meaning: "The Power", AyahCount: 5, Revelation: Mecca},
	{Number: 98, Name: "Al-Bayyinah", EnglishName: "Al-Bayyinah", Meaning: "The Clear Proof", AyahCount: 8, Revelation: Medina},
	{Number: 99, Name: "Az-Zalzalah", EnglishName: "Az-Zalzalah", Meaning: "The Earthquake", AyahCount: 8, Revelation: Medina},
	{Number: 100, Name: "Al-Adiyat", EnglishName: "Al-Adiyat", Meaning: "The Courser", AyahCount: 11, Revelation: Mecca},
	{Number: 101, Name: "Al-Qari'ah", EnglishName: "Al-Qari'ah", Meaning: "The Calamity", AyahCount: 11, Revelation: Mecca},
	{Number: 102, Name: "At-Takathur", EnglishName: "At-Takathur", Meaning: "The Rivalry in World Increase", AyahCount: 8, Revelation: Mecca},
	{Number: 103, Name: "Al-Asr", EnglishName: "Al-Asr", Meaning: "The Declining Day", AyahCount: 3, Revelation: Mecca},
	{Number: 104, Name: "Al-Humazah", EnglishName: "Al-Humazah", Meaning: "The Traducer", AyahCount: 9, Revelation: Mecca},
	{Number: 105, Name: "Al-Fil", EnglishName: "Al-Fil", Meaning: "The Elephant", AyahCount: 5, Revelation: Mecca},
	{Number: 106, Name: "Quraish", EnglishName: "Quraish", Meaning: "Quraysh", AyahCount: 4, Revelation: Mecca},
	{Number: 107, Name: "Al-Ma'un", EnglishName: "Al-Ma'un", Meaning: "The Small Kindnesses", AyahCount: 7, Revelation: Mecca},
	{Number: 108, Name: "Al-Kawthar", EnglishName: "Al-Kawthar", Meaning: "The Abundance", AyahCount: 3, Revelation: Mecca},
	{Number: 109, Name: "Al-Kafirun", EnglishName: "Al-Kafirun", Meaning: "The Disbelievers", AyahCount: 6, Revelation: Mecca},
	{Number: 110, Name: "An-Nasr", EnglishName: "An-Nasr", Meaning: "The Divine Support", AyahCount: 3, Revelation: Medina},
	{Number: 111, Name: "Al-Masad", EnglishName: "Al-Masad", Meaning: "The Palm Fiber", AyahCount: 5, Revelation: Mecca},
	{Number: 112, Name: "Al-Ikhlas", EnglishName: "Al-Ikhlas", Meaning: "The Sincerity", AyahCount: 4, Revelation: Mecca},
	{Number: 113, Name: "Al-Falaq", EnglishName: "Al-Falaq", Meaning: "The Daybreak", AyahCount: 5, Revelation: Mecca},
	{Number: 114, Name: "An-Nas", EnglishName: "An-Nas", Meaning: "Mankind", AyahCount: 6, Revelation: Mecca},
}
