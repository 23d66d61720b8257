package service

import (
	"winestudy/internal/model"

	"gorm.io/datatypes"
)

// 参照データの初期値。seed コマンドと POST /api/seed の両方で使います。

var seedCountries = []model.Country{
	{CountryID: "france", NamePT: "França", NameEN: "France", WorldType: model.WorldTypeOld, FlagEmoji: "🇫🇷", DescriptionPT: "O berço dos vinhos finos", DescriptionEN: "The birthplace of fine wines"},
	{CountryID: "italy", NamePT: "Itália", NameEN: "Italy", WorldType: model.WorldTypeOld, FlagEmoji: "🇮🇹", DescriptionPT: "Tradição milenar em vinhos", DescriptionEN: "Millennial wine tradition"},
	{CountryID: "spain", NamePT: "Espanha", NameEN: "Spain", WorldType: model.WorldTypeOld, FlagEmoji: "🇪🇸", DescriptionPT: "Maior área vinícola do mundo", DescriptionEN: "Largest wine region in the world"},
	{CountryID: "portugal", NamePT: "Portugal", NameEN: "Portugal", WorldType: model.WorldTypeOld, FlagEmoji: "🇵🇹", DescriptionPT: "Casa do vinho do Porto", DescriptionEN: "Home of Port wine"},
	{CountryID: "germany", NamePT: "Alemanha", NameEN: "Germany", WorldType: model.WorldTypeOld, FlagEmoji: "🇩🇪", DescriptionPT: "Mestre em Riesling", DescriptionEN: "Master of Riesling"},
	{CountryID: "usa", NamePT: "Estados Unidos", NameEN: "United States", WorldType: model.WorldTypeNew, FlagEmoji: "🇺🇸", DescriptionPT: "Líder do Novo Mundo", DescriptionEN: "New World leader"},
	{CountryID: "argentina", NamePT: "Argentina", NameEN: "Argentina", WorldType: model.WorldTypeNew, FlagEmoji: "🇦🇷", DescriptionPT: "Terra do Malbec", DescriptionEN: "Land of Malbec"},
	{CountryID: "chile", NamePT: "Chile", NameEN: "Chile", WorldType: model.WorldTypeNew, FlagEmoji: "🇨🇱", DescriptionPT: "Vinhos de altitude", DescriptionEN: "High altitude wines"},
	{CountryID: "australia", NamePT: "Austrália", NameEN: "Australia", WorldType: model.WorldTypeNew, FlagEmoji: "🇦🇺", DescriptionPT: "Inovação e qualidade", DescriptionEN: "Innovation and quality"},
	{CountryID: "new_zealand", NamePT: "Nova Zelândia", NameEN: "New Zealand", WorldType: model.WorldTypeNew, FlagEmoji: "🇳🇿", DescriptionPT: "Sauvignon Blanc excepcional", DescriptionEN: "Exceptional Sauvignon Blanc"},
	{CountryID: "south_africa", NamePT: "África do Sul", NameEN: "South Africa", WorldType: model.WorldTypeNew, FlagEmoji: "🇿🇦", DescriptionPT: "Berço do Pinotage", DescriptionEN: "Birthplace of Pinotage"},
	{CountryID: "austria", NamePT: "Áustria", NameEN: "Austria", WorldType: model.WorldTypeOld, FlagEmoji: "🇦🇹", DescriptionPT: "Grüner Veltliner único", DescriptionEN: "Unique Grüner Veltliner"},
	{CountryID: "greece", NamePT: "Grécia", NameEN: "Greece", WorldType: model.WorldTypeOld, FlagEmoji: "🇬🇷", DescriptionPT: "Origem antiga do vinho", DescriptionEN: "Ancient origin of wine"},
}

// seedGrapes の aroma_notes_en はタグIDと大文字小文字を無視して一致する表記にしています。
var seedGrapes = []model.Grape{
	{
		GrapeID: "cabernet_sauvignon", Name: "Cabernet Sauvignon", GrapeType: model.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT:     "A uva tinta mais plantada do mundo, conhecida por sua estrutura tânica e potencial de envelhecimento.",
		DescriptionEN:     "The most planted red grape in the world, known for its tannic structure and aging potential.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Cassis", "Cedro", "Tabaco", "Pimentão verde"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Cassis", "Cedar", "Tobacco", "Green pepper"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Groselha negra", "Menta", "Chocolate amargo"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Black currant", "Mint", "Dark chocolate"},
		Structure:         datatypes.JSON(`{"acidity": "Média-alta", "tannin": "Alto", "body": "Encorpado", "alcohol": "13-15%"}`),
		AgingPotential:    "15-30+ anos",
		BestRegions:       datatypes.JSONSlice[string]{"Bordeaux", "Napa Valley", "Coonawarra"},
		ClimatePreference: "Quente",
	},
	{
		GrapeID: "merlot", Name: "Merlot", GrapeType: model.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT:     "Uva versátil que produz vinhos macios e frutados, frequentemente usada em blends.",
		DescriptionEN:     "Versatile grape producing soft, fruity wines, often used in blends.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Ameixa", "Cereja", "Chocolate", "Ervas"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Plum", "Cherry", "Chocolate", "Herbs"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Frutas vermelhas", "Baunilha", "Especiarias"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Red fruits", "Vanilla", "Spice"},
		Structure:         datatypes.JSON(`{"acidity": "Média", "tannin": "Médio", "body": "Médio a encorpado", "alcohol": "12-14%"}`),
		AgingPotential:    "5-15 anos",
		BestRegions:       datatypes.JSONSlice[string]{"Bordeaux", "Tuscany", "Chile"},
		ClimatePreference: "Moderado a quente",
	},
	{
		GrapeID: "pinot_noir", Name: "Pinot Noir", GrapeType: model.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT:     "A uva mais difícil de cultivar, produz vinhos elegantes e complexos na Borgonha.",
		DescriptionEN:     "The most difficult grape to grow, producing elegant and complex wines in Burgundy.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Cereja", "Framboesa", "Rosa", "Terra"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Cherry", "Raspberry", "Rose", "Earth"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Frutas vermelhas", "Cogumelo", "Sub-bosque"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Red berries", "Mushroom", "Forest floor"},
		Structure:         datatypes.JSON(`{"acidity": "Alta", "tannin": "Baixo a médio", "body": "Leve a médio", "alcohol": "12-14%"}`),
		AgingPotential:    "5-20+ anos",
		BestRegions:       datatypes.JSONSlice[string]{"Burgundy", "Oregon", "New Zealand"},
		ClimatePreference: "Frio a moderado",
	},
	{
		GrapeID: "sangiovese", Name: "Sangiovese", GrapeType: model.GrapeTypeRed, OriginCountry: "italy",
		DescriptionPT:     "A alma da Toscana, produz Chianti e Brunello di Montalcino.",
		DescriptionEN:     "The soul of Tuscany, producing Chianti and Brunello di Montalcino.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Cereja", "Folha de tomate", "Ervas", "Couro"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Cherry", "Tomato leaf", "Herbs", "Leather"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Ginja", "Chá", "Ervas secas"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Sour cherry", "Tea", "Dried herbs"},
		Structure:         datatypes.JSON(`{"acidity": "Alta", "tannin": "Médio-alto", "body": "Médio", "alcohol": "12-14%"}`),
		AgingPotential:    "5-20+ anos",
		BestRegions:       datatypes.JSONSlice[string]{"Tuscany", "Romagna"},
		ClimatePreference: "Quente",
	},
	{
		GrapeID: "tempranillo", Name: "Tempranillo", GrapeType: model.GrapeTypeRed, OriginCountry: "spain",
		DescriptionPT:     "Principal uva da Rioja, versátil e expressiva com notas de couro e tabaco.",
		DescriptionEN:     "Main grape of Rioja, versatile and expressive with leather and tobacco notes.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Cereja", "Couro", "Tabaco", "Baunilha"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Cherry", "Leather", "Tobacco", "Vanilla"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Ameixa", "Figo", "Cedro"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Plum", "Fig", "Cedar"},
		Structure:         datatypes.JSON(`{"acidity": "Média", "tannin": "Médio", "body": "Médio a encorpado", "alcohol": "13-14%"}`),
		AgingPotential:    "5-25+ anos",
		BestRegions:       datatypes.JSONSlice[string]{"Rioja", "Ribera del Duero", "Toro"},
		ClimatePreference: "Moderado a quente",
	},
	{
		GrapeID: "malbec", Name: "Malbec", GrapeType: model.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT:     "Originária de Cahors, encontrou sua expressão máxima na Argentina.",
		DescriptionEN:     "Originally from Cahors, found its maximum expression in Argentina.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Amora", "Ameixa", "Violeta", "Cacau"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Blackberry", "Plum", "Violet", "Cocoa"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Frutas negras", "Chocolate", "Especiarias"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Dark fruits", "Chocolate", "Spice"},
		Structure:         datatypes.JSON(`{"acidity": "Média", "tannin": "Médio-alto", "body": "Encorpado", "alcohol": "13-15%"}`),
		AgingPotential:    "5-15 anos",
		BestRegions:       datatypes.JSONSlice[string]{"Mendoza", "Cahors"},
		ClimatePreference: "Quente com altitude",
	},
	{
		GrapeID: "nebbiolo", Name: "Nebbiolo", GrapeType: model.GrapeTypeRed, OriginCountry: "italy",
		DescriptionPT:     "A nobre uva do Piemonte, produz Barolo e Barbaresco.",
		DescriptionEN:     "The noble grape of Piedmont, producing Barolo and Barbaresco.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Rosa", "Alcatrão", "Cereja", "Trufa"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Rose", "Tar", "Cherry", "Truffle"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Cereja vermelha", "Alcaçuz", "Ervas secas"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Red cherry", "Licorice", "Dried herbs"},
		Structure:         datatypes.JSON(`{"acidity": "Alta", "tannin": "Muito alto", "body": "Médio a encorpado", "alcohol": "13-15%"}`),
		AgingPotential:    "15-40+ anos",
		BestRegions:       datatypes.JSONSlice[string]{"Piedmont"},
		ClimatePreference: "Frio a moderado",
	},
	{
		GrapeID: "syrah", Name: "Syrah / Shiraz", GrapeType: model.GrapeTypeRed, OriginCountry: "france",
		DescriptionPT:     "Produz vinhos potentes e especiados no Rhône e na Austrália.",
		DescriptionEN:     "Produces powerful, spicy wines in the Rhône and Australia.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Amora", "Pimenta-do-reino", "Fumaça", "Bacon"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Blackberry", "Black pepper", "Smoke", "Bacon"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Frutas negras", "Azeitona", "Couro"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Dark fruits", "Olive", "Leather"},
		Structure:         datatypes.JSON(`{"acidity": "Média", "tannin": "Médio-alto", "body": "Encorpado", "alcohol": "13-15%"}`),
		AgingPotential:    "5-20+ anos",
		BestRegions:       datatypes.JSONSlice[string]{"Rhône", "Barossa", "Stellenbosch"},
		ClimatePreference: "Quente",
	},
	{
		GrapeID: "chardonnay", Name: "Chardonnay", GrapeType: model.GrapeTypeWhite, OriginCountry: "france",
		DescriptionPT:     "A uva branca mais versátil, do Chablis mineral ao estilo amanteigado californiano.",
		DescriptionEN:     "The most versatile white grape, from mineral Chablis to buttery California style.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Maçã", "Cítrico", "Manteiga", "Carvalho"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Apple", "Citrus", "Butter", "Oak"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Frutas tropicais", "Baunilha", "Tostado"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Tropical fruits", "Vanilla", "Toast"},
		Structure:         datatypes.JSON(`{"acidity": "Média a alta", "tannin": "N/A", "body": "Médio a encorpado", "alcohol": "12-14%"}`),
		AgingPotential:    "2-10+ anos",
		BestRegions:       datatypes.JSONSlice[string]{"Burgundy", "Champagne", "California"},
		ClimatePreference: "Frio a quente",
	},
	{
		GrapeID: "sauvignon_blanc", Name: "Sauvignon Blanc", GrapeType: model.GrapeTypeWhite, OriginCountry: "france",
		DescriptionPT:     "Aromática e refrescante, com notas herbáceas e cítricas marcantes.",
		DescriptionEN:     "Aromatic and refreshing, with striking herbaceous and citrus notes.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Toranja", "Grama", "Groselha", "Maracujá"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Grapefruit", "Grass", "Gooseberry", "Passion fruit"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Cítrico", "Maçã verde", "Mineral"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Citrus", "Green apple", "Mineral"},
		Structure:         datatypes.JSON(`{"acidity": "Alta", "tannin": "N/A", "body": "Leve a médio", "alcohol": "11-13%"}`),
		AgingPotential:    "1-5 anos",
		BestRegions:       datatypes.JSONSlice[string]{"Loire", "Marlborough", "Bordeaux"},
		ClimatePreference: "Frio a moderado",
	},
	{
		GrapeID: "riesling", Name: "Riesling", GrapeType: model.GrapeTypeWhite, OriginCountry: "germany",
		DescriptionPT:     "Rainha das uvas brancas alemãs, do seco ao doce, sempre com acidez vibrante.",
		DescriptionEN:     "Queen of German white grapes, from dry to sweet, always with vibrant acidity.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Lima", "Pêssego", "Petróleo", "Mel"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Lime", "Peach", "Petrol", "Honey"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Maçã", "Damasco", "Mineral", "Ardósia"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Apple", "Apricot", "Mineral", "Slate"},
		Structure:         datatypes.JSON(`{"acidity": "Muito alta", "tannin": "N/A", "body": "Leve a médio", "alcohol": "8-13%"}`),
		AgingPotential:    "5-30+ anos",
		BestRegions:       datatypes.JSONSlice[string]{"Mosel", "Alsace", "Clare Valley"},
		ClimatePreference: "Frio",
	},
	{
		GrapeID: "touriga_nacional", Name: "Touriga Nacional", GrapeType: model.GrapeTypeRed, OriginCountry: "portugal",
		DescriptionPT:     "A mais nobre uva portuguesa, base dos melhores vinhos do Porto e Douro.",
		DescriptionEN:     "The noblest Portuguese grape, base of the best Port and Douro wines.",
		AromaNotesPT:      datatypes.JSONSlice[string]{"Violeta", "Amora", "Esteva", "Menta"},
		AromaNotesEN:      datatypes.JSONSlice[string]{"Violet", "Blackberry", "Rock rose", "Mint"},
		FlavorNotesPT:     datatypes.JSONSlice[string]{"Frutas negras", "Chocolate", "Ervas"},
		FlavorNotesEN:     datatypes.JSONSlice[string]{"Dark fruits", "Chocolate", "Herbs"},
		Structure:         datatypes.JSON(`{"acidity": "Média-alta", "tannin": "Alto", "body": "Encorpado", "alcohol": "13-15%"}`),
		AgingPotential:    "10-30+ anos",
		BestRegions:       datatypes.JSONSlice[string]{"Douro", "Dão"},
		ClimatePreference: "Quente",
	},
}

var seedTracks = []model.StudyTrack{
	{TrackID: "basic", Level: model.LevelBasic, TitlePT: "Fundamentos do Vinho", TitleEN: "Wine Fundamentals", DescriptionPT: "Aprenda os conceitos básicos", DescriptionEN: "Learn the basic concepts", LessonsCount: 5},
	{TrackID: "intermediate", Level: model.LevelIntermediate, TitlePT: "Terroir e Regiões", TitleEN: "Terroir and Regions", DescriptionPT: "Explore regiões vinícolas", DescriptionEN: "Explore wine regions", LessonsCount: 8},
	{TrackID: "advanced", Level: model.LevelAdvanced, TitlePT: "Mestria em Vinhos", TitleEN: "Wine Mastery", DescriptionPT: "Conhecimento avançado", DescriptionEN: "Advanced knowledge", LessonsCount: 10},
}

var seedLessons = []model.Lesson{
	{LessonID: "basic_1", TrackID: "basic", TitlePT: "O que é Vinho?", TitleEN: "What is Wine?", ContentPT: "O vinho é uma bebida alcoólica produzida pela fermentação do suco de uvas.", ContentEN: "Wine is an alcoholic beverage produced by fermenting grape juice.", OrderIndex: 1, DurationMinutes: 10},
	{LessonID: "basic_2", TrackID: "basic", TitlePT: "Tipos de Vinho", TitleEN: "Types of Wine", ContentPT: "Existem diversos tipos de vinho: tinto, branco, rosé e espumante.", ContentEN: "There are several types of wine: red, white, rosé and sparkling.", OrderIndex: 2, DurationMinutes: 12},
	{LessonID: "basic_3", TrackID: "basic", TitlePT: "Como Ler um Rótulo", TitleEN: "How to Read a Label", ContentPT: "O rótulo contém informações importantes: produtor, região, safra e teor alcoólico.", ContentEN: "The label contains important information: producer, region, vintage and alcohol content.", OrderIndex: 3, DurationMinutes: 10},
	{LessonID: "basic_4", TrackID: "basic", TitlePT: "Castas Básicas", TitleEN: "Basic Grapes", ContentPT: "Conheça as principais castas tintas e brancas.", ContentEN: "Know the main red and white grape varieties.", OrderIndex: 4, DurationMinutes: 15},
	{LessonID: "basic_5", TrackID: "basic", TitlePT: "Degustação Básica", TitleEN: "Basic Tasting", ContentPT: "Aprenda a degustar vinho: visão, olfato e paladar.", ContentEN: "Learn how to taste wine: sight, smell and palate.", OrderIndex: 5, DurationMinutes: 12},
}

var seedAromaTags = []model.AromaTag{
	{TagID: "apple", NamePT: "Maçã", NameEN: "Apple", Category: model.AromaCategoryFruit, Emoji: "🍎"},
	{TagID: "citrus", NamePT: "Cítrico", NameEN: "Citrus", Category: model.AromaCategoryFruit, Emoji: "🍋"},
	{TagID: "berry", NamePT: "Frutas vermelhas", NameEN: "Berries", Category: model.AromaCategoryFruit, Emoji: "🍓"},
	{TagID: "cherry", NamePT: "Cereja", NameEN: "Cherry", Category: model.AromaCategoryFruit, Emoji: "🍒"},
	{TagID: "blackberry", NamePT: "Amora", NameEN: "Blackberry", Category: model.AromaCategoryFruit, Emoji: "🫐"},
	{TagID: "plum", NamePT: "Ameixa", NameEN: "Plum", Category: model.AromaCategoryFruit, Emoji: "🍑"},
	{TagID: "vanilla", NamePT: "Baunilha", NameEN: "Vanilla", Category: model.AromaCategoryOak, Emoji: "🍦"},
	{TagID: "oak", NamePT: "Carvalho", NameEN: "Oak", Category: model.AromaCategoryOak, Emoji: "🪵"},
	{TagID: "toast", NamePT: "Tostado", NameEN: "Toast", Category: model.AromaCategoryOak, Emoji: "🍞"},
	{TagID: "pepper", NamePT: "Pimenta", NameEN: "Pepper", Category: model.AromaCategorySpice, Emoji: "🌶️"},
	{TagID: "cinnamon", NamePT: "Canela", NameEN: "Cinnamon", Category: model.AromaCategorySpice, Emoji: "🌿"},
	{TagID: "floral", NamePT: "Floral", NameEN: "Floral", Category: model.AromaCategoryFloral, Emoji: "🌸"},
	{TagID: "rose", NamePT: "Rosa", NameEN: "Rose", Category: model.AromaCategoryFloral, Emoji: "🌹"},
	{TagID: "mineral", NamePT: "Mineral", NameEN: "Mineral", Category: model.AromaCategoryEarth, Emoji: "🪨"},
	{TagID: "tobacco", NamePT: "Tabaco", NameEN: "Tobacco", Category: model.AromaCategoryEarth, Emoji: "🍂"},
	{TagID: "leather", NamePT: "Couro", NameEN: "Leather", Category: model.AromaCategoryEarth, Emoji: "👜"},
}

func lessonRef(id string) *string { return &id }

var seedQuizQuestions = []model.QuizQuestion{
	{
		QuestionID: "q1", TrackID: "basic", LessonID: lessonRef("basic_1"), QuestionType: model.QuestionTypeMultipleChoice,
		QuestionPT:    "Qual é o processo principal na produção de vinho?",
		QuestionEN:    "What is the main process in wine production?",
		OptionsPT:     datatypes.JSONSlice[string]{"Destilação", "Fermentação", "Pasteurização", "Carbonatação"},
		OptionsEN:     datatypes.JSONSlice[string]{"Distillation", "Fermentation", "Pasteurization", "Carbonation"},
		CorrectAnswer: 1,
		ExplanationPT: "A fermentação é o processo onde as leveduras transformam o açúcar das uvas em álcool e CO2.",
		ExplanationEN: "Fermentation is the process where yeast transforms grape sugar into alcohol and CO2.",
	},
	{
		QuestionID: "q2", TrackID: "basic", LessonID: lessonRef("basic_2"), QuestionType: model.QuestionTypeMultipleChoice,
		QuestionPT:    "Qual casta é conhecida como a 'rainha das uvas tintas'?",
		QuestionEN:    "Which grape is known as the 'queen of red grapes'?",
		OptionsPT:     datatypes.JSONSlice[string]{"Merlot", "Pinot Noir", "Cabernet Sauvignon", "Syrah"},
		OptionsEN:     datatypes.JSONSlice[string]{"Merlot", "Pinot Noir", "Cabernet Sauvignon", "Syrah"},
		CorrectAnswer: 2,
		ExplanationPT: "Cabernet Sauvignon é a uva tinta mais plantada do mundo.",
		ExplanationEN: "Cabernet Sauvignon is the most planted red grape in the world.",
	},
	{
		QuestionID: "q3", TrackID: "basic", LessonID: lessonRef("basic_4"), QuestionType: model.QuestionTypeTrueFalse,
		QuestionPT:    "Riesling é uma uva originária da Alemanha.",
		QuestionEN:    "Riesling is a grape variety originating from Germany.",
		OptionsPT:     datatypes.JSONSlice[string]{"Verdadeiro", "Falso"},
		OptionsEN:     datatypes.JSONSlice[string]{"True", "False"},
		CorrectAnswer: 0,
		ExplanationPT: "Riesling é originária da região do Reno na Alemanha.",
		ExplanationEN: "Riesling originates from the Rhine region in Germany.",
	},
	{
		QuestionID: "q4", TrackID: "basic", LessonID: lessonRef("basic_3"), QuestionType: model.QuestionTypeMultipleChoice,
		QuestionPT:    "O que significa DOC em vinhos italianos?",
		QuestionEN:    "What does DOC mean in Italian wines?",
		OptionsPT:     datatypes.JSONSlice[string]{"Denominação de Origem Controlada", "Denominação Original Certificada", "Documento de Origem do Cultivo", "Destino Original Conhecido"},
		OptionsEN:     datatypes.JSONSlice[string]{"Controlled Designation of Origin", "Certified Original Designation", "Cultivation Origin Document", "Known Original Destination"},
		CorrectAnswer: 0,
		ExplanationPT: "DOC (Denominazione di Origine Controllata) garante a origem e a qualidade do vinho.",
		ExplanationEN: "DOC (Denominazione di Origine Controllata) guarantees the origin and quality of the wine.",
	},
	{
		QuestionID: "q5", TrackID: "basic", LessonID: lessonRef("basic_5"), QuestionType: model.QuestionTypeMultipleChoice,
		QuestionPT:    "Em climas frios, os vinhos tendem a ter:",
		QuestionEN:    "In cool climates, wines tend to have:",
		OptionsPT:     datatypes.JSONSlice[string]{"Mais álcool e taninos fortes", "Acidez alta e corpo leve", "Baixa acidez e muito açúcar residual", "Aromas de frutas tropicais"},
		OptionsEN:     datatypes.JSONSlice[string]{"More alcohol and strong tannins", "High acidity and light body", "Low acidity and lots of residual sugar", "Tropical fruit aromas"},
		CorrectAnswer: 1,
		ExplanationPT: "Climas frios resultam em uvas com mais acidez e menos açúcar.",
		ExplanationEN: "Cool climates produce grapes with more acidity and less sugar.",
	},
	{
		QuestionID: "q6", TrackID: "basic", LessonID: lessonRef("basic_2"), QuestionType: model.QuestionTypeMultipleChoice,
		QuestionPT:    "Qual característica é típica da Pinot Noir?",
		QuestionEN:    "What characteristic is typical of Pinot Noir?",
		OptionsPT:     datatypes.JSONSlice[string]{"Taninos muito altos", "Cor escura e densa", "Elegância e delicadeza", "Alta produtividade"},
		OptionsEN:     datatypes.JSONSlice[string]{"Very high tannins", "Dark, dense color", "Elegance and delicacy", "High productivity"},
		CorrectAnswer: 2,
		ExplanationPT: "Pinot Noir produz vinhos elegantes e delicados, com taninos suaves.",
		ExplanationEN: "Pinot Noir produces elegant and delicate wines with soft tannins.",
	},
}
