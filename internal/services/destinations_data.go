package services

import "yatrasetu/internal/models/response_models"

var destinationCategories = []response_models.CategoryCount{
	{Value: "heritage", Label: "Heritage", LabelGu: "વારસો"},
	{Value: "rural", Label: "Rural", LabelGu: "ગ્રામ્ય"},
	{Value: "nature", Label: "Nature", LabelGu: "કુદરત"},
	{Value: "spiritual", Label: "Spiritual", LabelGu: "આધ્યાત્મિક"},
	{Value: "urban", Label: "Urban", LabelGu: "શહેરી"},
}

var destinationMoods = []string{"relaxing", "adventurous", "instagrammable", "family-friendly"}

var gujaratDestinations = []response_models.Destination{
	{
		ID:           "rani-ki-vav",
		Name:         "Rani ki Vav",
		NameGu:       "રાણકી વાવ",
		Region:       "Patan",
		RegionGu:     "પાટણ",
		Category:     "heritage",
		Lat:          23.8589,
		Lng:          72.1016,
		Rating:       4.8,
		Reviews:      2140,
		Specialty:    "UNESCO stepwell",
		SpecialtyGu:  "યુનેસ્કો વારસો વાવ",
		Description:  "An eleventh century stepwell with seven levels of carved panels.",
		BestTime:     "October to March",
		BestTimeGu:   "ઓક્ટોબરથી માર્ચ",
		HowToReach:   "Drive 125 km north of Ahmedabad on SH-41, or take a GSRTC bus to Patan",
		HowToReachGu: "અમદાવાદથી SH-41 પર 125 કિમી ઉત્તરમાં અથવા પાટણ સુધી એસટી બસ",
		Moods:        []string{"instagrammable", "family-friendly"},
	},
	{
		ID:           "dholavira",
		Name:         "Dholavira",
		NameGu:       "ધોળાવીરા",
		Region:       "Kutch",
		RegionGu:     "કચ્છ",
		Category:     "heritage",
		Lat:          23.8870,
		Lng:          70.2137,
		Rating:       4.6,
		Reviews:      860,
		Specialty:    "Harappan city ruins",
		SpecialtyGu:  "હડપ્પીય નગરના અવશેષો",
		Description:  "Excavated Indus Valley city on Khadir Bet island in the Rann.",
		BestTime:     "November to February",
		BestTimeGu:   "નવેમ્બરથી ફેબ્રુઆરી",
		HowToReach:   "Drive 220 km from Bhuj via Rapar; the last stretch crosses the Rann",
		HowToReachGu: "ભુજથી રાપર થઈને 220 કિમી; છેલ્લો રસ્તો રણમાંથી પસાર થાય છે",
		Moods:        []string{"adventurous", "instagrammable"},
	},
	{
		ID:           "hodka",
		Name:         "Hodka",
		NameGu:       "હોડકા",
		Region:       "Kutch",
		RegionGu:     "કચ્છ",
		Category:     "rural",
		Lat:          23.7906,
		Lng:          69.8350,
		Rating:       4.5,
		Reviews:      410,
		Specialty:    "Banni embroidery village",
		SpecialtyGu:  "બન્ની ભરતકામ ગામ",
		Description:  "Community run bhunga stays among Banni grassland artisans.",
		BestTime:     "November to February",
		BestTimeGu:   "નવેમ્બરથી ફેબ્રુઆરી",
		HowToReach:   "Drive 60 km north of Bhuj on the Khavda road",
		HowToReachGu: "ભુજથી ખાવડા રોડ પર 60 કિમી ઉત્તરમાં",
		Moods:        []string{"relaxing", "instagrammable"},
	},
	{
		ID:           "bhujodi",
		Name:         "Bhujodi",
		NameGu:       "ભુજોડી",
		Region:       "Kutch",
		RegionGu:     "કચ્છ",
		Category:     "rural",
		Lat:          23.2252,
		Lng:          69.7166,
		Rating:       4.4,
		Reviews:      530,
		Specialty:    "Handloom weaving village",
		SpecialtyGu:  "હાથવણાટ ગામ",
		Description:  "Vankar weaving families and the Vande Mataram memorial.",
		BestTime:     "October to March",
		BestTimeGu:   "ઓક્ટોબરથી માર્ચ",
		HowToReach:   "Take a rickshaw 8 km south-east of Bhuj on the Anjar highway",
		HowToReachGu: "ભુજથી અંજાર હાઇવે પર 8 કિમી રિક્ષા દ્વારા",
		Moods:        []string{"family-friendly", "relaxing"},
	},
	{
		ID:           "saputara",
		Name:         "Saputara",
		NameGu:       "સાપુતારા",
		Region:       "Dang",
		RegionGu:     "ડાંગ",
		Category:     "nature",
		Lat:          20.5780,
		Lng:          73.7500,
		Rating:       4.3,
		Reviews:      1790,
		Specialty:    "Sahyadri hill station",
		SpecialtyGu:  "સહ્યાદ્રિનું ગિરિમથક",
		Description:  "Lake, tribal museum and monsoon waterfalls in the Dang forests.",
		BestTime:     "July to February",
		BestTimeGu:   "જુલાઈથી ફેબ્રુઆરી",
		HowToReach:   "Drive 165 km from Surat via Vansda, or take a bus from Nashik",
		HowToReachGu: "સુરતથી વાંસદા થઈને 165 કિમી અથવા નાસિકથી બસ",
		Moods:        []string{"relaxing", "family-friendly"},
	},
	{
		ID:           "gir",
		Name:         "Gir National Park",
		NameGu:       "ગીર રાષ્ટ્રીય ઉદ્યાન",
		Region:       "Saurashtra",
		RegionGu:     "સૌરાષ્ટ્ર",
		Category:     "nature",
		Lat:          21.1243,
		Lng:          70.8242,
		Rating:       4.7,
		Reviews:      3120,
		Specialty:    "Asiatic lion sanctuary",
		SpecialtyGu:  "એશિયાઈ સિંહ અભયારણ્ય",
		Description:  "Dry deciduous forest and the last home of the Asiatic lion.",
		BestTime:     "December to March",
		BestTimeGu:   "ડિસેમ્બરથી માર્ચ",
		HowToReach:   "Drive 65 km from Junagadh to Sasan Gir, or take the train to Sasan Gir station",
		HowToReachGu: "જૂનાગઢથી સાસણ ગીર સુધી 65 કિમી અથવા સાસણ ગીર સ્ટેશન સુધી ટ્રેન",
		Moods:        []string{"adventurous", "family-friendly"},
	},
	{
		ID:           "somnath",
		Name:         "Somnath",
		NameGu:       "સોમનાથ",
		Region:       "Saurashtra",
		RegionGu:     "સૌરાષ્ટ્ર",
		Category:     "spiritual",
		Lat:          20.8880,
		Lng:          70.4012,
		Rating:       4.8,
		Reviews:      4050,
		Specialty:    "Jyotirlinga shore temple",
		SpecialtyGu:  "સમુદ્રકાંઠે જ્યોતિર્લિંગ મંદિર",
		Description:  "First of the twelve jyotirlingas with an evening sound and light show.",
		BestTime:     "October to February",
		BestTimeGu:   "ઓક્ટોબરથી ફેબ્રુઆરી",
		HowToReach:   "Take a train to Veraval, then 7 km by road",
		HowToReachGu: "વેરાવળ સુધી ટ્રેન અને પછી રસ્તા માર્ગે 7 કિમી",
		Moods:        []string{"relaxing", "instagrammable"},
	},
	{
		ID:           "dwarka",
		Name:         "Dwarka",
		NameGu:       "દ્વારકા",
		Region:       "Devbhumi Dwarka",
		RegionGu:     "દેવભૂમિ દ્વારકા",
		Category:     "spiritual",
		Lat:          22.2394,
		Lng:          68.9678,
		Rating:       4.7,
		Reviews:      3380,
		Specialty:    "Dwarkadhish temple town",
		SpecialtyGu:  "દ્વારકાધીશ મંદિર નગરી",
		Description:  "Char Dham pilgrimage town at the mouth of the Gomti.",
		BestTime:     "November to March",
		BestTimeGu:   "નવેમ્બરથી માર્ચ",
		HowToReach:   "Take a train to Dwarka station or drive 140 km from Jamnagar",
		HowToReachGu: "દ્વારકા સ્ટેશન સુધી ટ્રેન અથવા જામનગરથી 140 કિમી",
		Moods:        []string{"family-friendly", "relaxing"},
	},
	{
		ID:           "champaner",
		Name:         "Champaner-Pavagadh",
		NameGu:       "ચાંપાનેર-પાવાગઢ",
		Region:       "Panchmahal",
		RegionGu:     "પંચમહાલ",
		Category:     "heritage",
		Lat:          22.4854,
		Lng:          73.5362,
		Rating:       4.5,
		Reviews:      970,
		Specialty:    "Archaeological park",
		SpecialtyGu:  "પુરાતત્વીય ઉદ્યાન",
		Description:  "Sultanate mosques below the Kalika Mata hill shrine.",
		BestTime:     "October to March",
		BestTimeGu:   "ઓક્ટોબરથી માર્ચ",
		HowToReach:   "Drive 50 km north-east of Vadodara on the Halol road",
		HowToReachGu: "વડોદરાથી હાલોલ રોડ પર 50 કિમી",
		Moods:        []string{"adventurous", "instagrammable"},
	},
	{
		ID:           "ahmedabad-pols",
		Name:         "Ahmedabad Old City",
		NameGu:       "અમદાવાદ જૂનું શહેર",
		Region:       "Ahmedabad",
		RegionGu:     "અમદાવાદ",
		Category:     "urban",
		Lat:          23.0225,
		Lng:          72.5714,
		Rating:       4.4,
		Reviews:      2660,
		Specialty:    "Heritage pols walk",
		SpecialtyGu:  "પોળોની વારસો પદયાત્રા",
		Description:  "Walled city lanes, carved havelis and the Manek Chowk night market.",
		BestTime:     "November to February",
		BestTimeGu:   "નવેમ્બરથી ફેબ્રુઆરી",
		HowToReach:   "Start from Kalupur railway station; the heritage walk begins at Swaminarayan temple",
		HowToReachGu: "કાલુપુર રેલવે સ્ટેશનથી; વારસો પદયાત્રા સ્વામિનારાયણ મંદિરથી શરૂ થાય છે",
		Moods:        []string{"instagrammable", "adventurous"},
	},
}
