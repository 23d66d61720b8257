package service

import (
	"winestudy/internal/model"

	"gorm.io/datatypes"
)

// seedRegions は主要産地の地域データです。terroir / climate は pt/en の記述子をそのまま JSON で持ちます。
var seedRegions = []model.Region{
	// france
	{
		RegionID: "bordeaux", CountryID: "france", Name: "Bordeaux", NamePT: "Bordéus", NameEN: "Bordeaux",
		DescriptionPT: "A região mais famosa do mundo, conhecida por seus blends de Cabernet Sauvignon, Merlot e Cabernet Franc. Dividida em Margem Esquerda e Margem Direita.",
		DescriptionEN: "The world's most famous region, known for its Cabernet Sauvignon, Merlot and Cabernet Franc blends. Divided into Left Bank and Right Bank.",
		Climate:       datatypes.JSON(`{"type_pt": "Oceânico", "type_en": "Oceanic", "temperature_pt": "Temperado", "temperature_en": "Temperate", "rainfall_pt": "900mm/ano", "rainfall_en": "900mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Cascalho, argila, calcário", "soil_en": "Gravel, clay, limestone", "altitude_pt": "0-100m", "altitude_en": "0-100m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Cabernet Sauvignon", "Merlot", "Cabernet Franc", "Sémillon", "Sauvignon Blanc"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos encorpados", "Brancos secos", "Doces (Sauternes)"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Full-bodied reds", "Dry whites", "Sweet wines (Sauternes)"},
	},
	{
		RegionID: "burgundy", CountryID: "france", Name: "Burgundy", NamePT: "Borgonha", NameEN: "Burgundy",
		DescriptionPT: "Berço do Pinot Noir e Chardonnay de classe mundial. Sistema de classificação complexo baseado em climat (vinhedos individuais).",
		DescriptionEN: "Birthplace of world-class Pinot Noir and Chardonnay. Complex classification system based on climat (individual vineyards).",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Frio a moderado", "temperature_en": "Cool to moderate", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, marga, argila", "soil_en": "Limestone, marl, clay", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Pinot Noir", "Chardonnay"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos elegantes", "Brancos minerais"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant reds", "Mineral whites"},
	},
	{
		RegionID: "champagne", CountryID: "france", Name: "Champagne", NamePT: "Champagne", NameEN: "Champagne",
		DescriptionPT: "Região exclusiva para produção de espumantes pelo método tradicional. Apenas vinhos daqui podem ser chamados de Champagne.",
		DescriptionEN: "Exclusive region for traditional method sparkling production. Only wines from here can be called Champagne.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "650mm/ano", "rainfall_en": "650mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Giz (craie), calcário", "soil_en": "Chalk (craie), limestone", "altitude_pt": "100-300m", "altitude_en": "100-300m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Chardonnay", "Pinot Noir", "Pinot Meunier"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Espumantes (método tradicional)"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Sparkling wines (traditional method)"},
	},
	{
		RegionID: "rhone", CountryID: "france", Name: "Rhône", NamePT: "Ródano", NameEN: "Rhône",
		DescriptionPT: "Dividida em Norte (Syrah elegante) e Sul (blends com Grenache). Inclui Côte-Rôtie, Hermitage e Châteauneuf-du-Pape.",
		DescriptionEN: "Divided into North (elegant Syrah) and South (Grenache blends). Includes Côte-Rôtie, Hermitage and Châteauneuf-du-Pape.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental (norte), Mediterrâneo (sul)", "type_en": "Continental (north), Mediterranean (south)", "temperature_pt": "Moderado a quente", "temperature_en": "Moderate to warm", "rainfall_pt": "600-800mm/ano", "rainfall_en": "600-800mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito (norte), seixos rolados (sul)", "soil_en": "Granite (north), galets roulés/rounded stones (south)", "altitude_pt": "100-400m", "altitude_en": "100-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Syrah", "Grenache", "Mourvèdre", "Viognier", "Marsanne", "Roussanne"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos potentes", "Brancos aromáticos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Powerful reds", "Aromatic whites"},
	},
	{
		RegionID: "loire", CountryID: "france", Name: "Loire Valley", NamePT: "Vale do Loire", NameEN: "Loire Valley",
		DescriptionPT: "O jardim da França, com grande diversidade de estilos. Famosa por Sauvignon Blanc (Sancerre), Chenin Blanc (Vouvray) e Cabernet Franc (Chinon).",
		DescriptionEN: "The garden of France, with great diversity of styles. Famous for Sauvignon Blanc (Sancerre), Chenin Blanc (Vouvray) and Cabernet Franc (Chinon).",
		Climate:       datatypes.JSON(`{"type_pt": "Oceânico a continental", "type_en": "Oceanic to continental", "temperature_pt": "Frio a moderado", "temperature_en": "Cool to moderate", "rainfall_pt": "600-700mm/ano", "rainfall_en": "600-700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, sílex, xisto, tufo", "soil_en": "Limestone, flint, schist, tuffeau", "altitude_pt": "50-300m", "altitude_en": "50-300m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Sauvignon Blanc", "Chenin Blanc", "Cabernet Franc", "Muscadet"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos frescos", "Tintos leves", "Espumantes", "Doces"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Fresh whites", "Light reds", "Sparkling", "Sweet wines"},
	},
	{
		RegionID: "alsace", CountryID: "france", Name: "Alsace", NamePT: "Alsácia", NameEN: "Alsace",
		DescriptionPT: "Região de influência germânica, especializada em brancos aromáticos. Vinhos varietais em garrafas alongadas características.",
		DescriptionEN: "German-influenced region, specializing in aromatic whites. Varietal wines in characteristic elongated bottles.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "500mm/ano (uma das mais secas)", "rainfall_en": "500mm/year (one of the driest)"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito, calcário, argila, arenito", "soil_en": "Granite, limestone, clay, sandstone", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Riesling", "Gewürztraminer", "Pinot Gris", "Muscat"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos aromáticos secos", "Vendanges Tardives (colheita tardia)"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Dry aromatic whites", "Late harvest wines"},
	},
	{
		RegionID: "languedoc", CountryID: "france", Name: "Languedoc-Roussillon", NamePT: "Languedoc-Roussillon", NameEN: "Languedoc-Roussillon",
		DescriptionPT: "Maior região vinícola da França em volume. Produz desde vinhos acessíveis até premium. Clima mediterrâneo quente.",
		DescriptionEN: "France's largest wine region by volume. Produces everything from value to premium wines. Hot Mediterranean climate.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Warm and dry", "rainfall_pt": "400-600mm/ano", "rainfall_en": "400-600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Xisto, calcário, argila, cascalho", "soil_en": "Schist, limestone, clay, gravel", "altitude_pt": "0-500m", "altitude_en": "0-500m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Grenache", "Syrah", "Mourvèdre", "Carignan", "Cinsault", "Picpoul"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos encorpados", "Rosés", "Brancos frescos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Full-bodied reds", "Rosés", "Fresh whites"},
	},
	{
		RegionID: "provence", CountryID: "france", Name: "Provence", NamePT: "Provença", NameEN: "Provence",
		DescriptionPT: "Capital mundial do vinho rosé. Vinhos pálidos, secos e refrescantes. Paisagens icônicas do sul da França.",
		DescriptionEN: "World capital of rosé wine. Pale, dry and refreshing wines. Iconic southern French landscapes.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente e ensolarado", "temperature_en": "Warm and sunny", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, xisto, argila, arenito", "soil_en": "Limestone, schist, clay, sandstone", "altitude_pt": "0-400m", "altitude_en": "0-400m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Grenache", "Cinsault", "Syrah", "Mourvèdre"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Rosés pálidos e secos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Pale, dry rosés"},
	},
	{
		RegionID: "beaujolais", CountryID: "france", Name: "Beaujolais", NamePT: "Beaujolais", NameEN: "Beaujolais",
		DescriptionPT: "Região do Gamay, produzindo vinhos frutados e leves. Dos Crus de Beaujolais premium ao Beaujolais Nouveau jovem.",
		DescriptionEN: "Home of Gamay, producing fruity, light wines. From premium Beaujolais Crus to young Beaujolais Nouveau.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "750mm/ano", "rainfall_en": "750mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito (norte/Crus), argila (sul)", "soil_en": "Granite (north/Crus), clay (south)", "altitude_pt": "200-500m", "altitude_en": "200-500m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Gamay"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos leves e frutados"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Light, fruity reds"},
	},
	{
		RegionID: "cahors", CountryID: "france", Name: "Cahors", NamePT: "Cahors", NameEN: "Cahors",
		DescriptionPT: "Berço do Malbec, produzindo vinhos escuros e intensos conhecidos historicamente como 'vinho negro'.",
		DescriptionEN: "Birthplace of Malbec, producing dark, intense wines historically known as 'black wine'.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, argila, cascalho", "soil_en": "Limestone, clay, gravel", "altitude_pt": "100-350m", "altitude_en": "100-350m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Malbec"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos escuros e intensos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Dark, intense reds"},
	},
	{
		RegionID: "bandol", CountryID: "france", Name: "Bandol", NamePT: "Bandol", NameEN: "Bandol",
		DescriptionPT: "Pequena denominação na Provença conhecida por seus tintos potentes baseados em Mourvèdre.",
		DescriptionEN: "Small Provence appellation known for powerful Mourvèdre-based reds.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente", "temperature_en": "Warm", "rainfall_pt": "650mm/ano", "rainfall_en": "650mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, arenito, argila", "soil_en": "Limestone, sandstone, clay", "altitude_pt": "0-400m em terraços", "altitude_en": "0-400m on terraces", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Mourvèdre", "Grenache", "Cinsault"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos de guarda", "Rosés"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Age-worthy reds", "Rosés"},
	},
	// italy
	{
		RegionID: "tuscany", CountryID: "italy", Name: "Tuscany", NamePT: "Toscana", NameEN: "Tuscany",
		DescriptionPT: "Coração vinícola da Itália, lar do Sangiovese. Inclui Chianti, Brunello di Montalcino e os Super Toscanos.",
		DescriptionEN: "Heart of Italian winemaking, home of Sangiovese. Includes Chianti, Brunello di Montalcino and Super Tuscans.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Warm and dry", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Galestro (xisto argiloso), alberese (calcário), areia", "soil_en": "Galestro (clay schist), alberese (limestone), sand", "altitude_pt": "250-600m", "altitude_en": "250-600m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Sangiovese", "Cabernet Sauvignon", "Merlot"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos estruturados", "Super Toscanos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Structured reds", "Super Tuscans"},
	},
	{
		RegionID: "piedmont", CountryID: "italy", Name: "Piedmont", NamePT: "Piemonte", NameEN: "Piedmont",
		DescriptionPT: "Noroeste da Itália, produzindo os majestosos Barolo e Barbaresco de Nebbiolo.",
		DescriptionEN: "Northwestern Italy, producing majestic Barolo and Barbaresco from Nebbiolo.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Frio a moderado", "temperature_en": "Cool to moderate", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Marga calcária (Tortonian e Helvetian)", "soil_en": "Calcareous marl (Tortonian and Helvetian)", "altitude_pt": "200-500m", "altitude_en": "200-500m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Nebbiolo", "Barbera", "Dolcetto", "Moscato", "Arneis", "Cortese"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos tânicos de guarda", "Brancos aromáticos", "Espumantes (Asti)"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Tannic age-worthy reds", "Aromatic whites", "Sparkling (Asti)"},
	},
	{
		RegionID: "veneto", CountryID: "italy", Name: "Veneto", NamePT: "Vêneto", NameEN: "Veneto",
		DescriptionPT: "Região mais produtiva da Itália, incluindo Prosecco, Amarone, Valpolicella e Soave.",
		DescriptionEN: "Italy's most productive region, including Prosecco, Amarone, Valpolicella and Soave.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental a mediterrâneo", "type_en": "Continental to Mediterranean", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "800mm/ano", "rainfall_en": "800mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, basalto vulcânico, aluvial", "soil_en": "Limestone, volcanic basite, alluvial", "altitude_pt": "50-500m", "altitude_en": "50-500m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Corvina", "Rondinella", "Glera", "Garganega"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Amarone (appassimento)", "Prosecco", "Soave"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Amarone (appassimento)", "Prosecco", "Soave"},
	},
	{
		RegionID: "sicily", CountryID: "italy", Name: "Sicily", NamePT: "Sicília", NameEN: "Sicily",
		DescriptionPT: "Maior ilha do Mediterrâneo, com vinhos do Etna vulcânico aos tintos do interior.",
		DescriptionEN: "Largest Mediterranean island, from volcanic Etna wines to interior reds.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo quente", "type_en": "Hot Mediterranean", "temperature_pt": "Quente", "temperature_en": "Hot", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Vulcânico (Etna), calcário, argila", "soil_en": "Volcanic (Etna), limestone, clay", "altitude_pt": "0-1000m (Etna)", "altitude_en": "0-1000m (Etna)", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Nero d'Avola", "Nerello Mascalese", "Grillo", "Carricante"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos frutados", "Etna elegante", "Brancos frescos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Fruity reds", "Elegant Etna", "Fresh whites"},
	},
	{
		RegionID: "campania", CountryID: "italy", Name: "Campania", NamePT: "Campânia", NameEN: "Campania",
		DescriptionPT: "Sul da Itália com uvas antigas como Aglianico (Taurasi) e Fiano (Avellino). Terroir vulcânico único.",
		DescriptionEN: "Southern Italy with ancient grapes like Aglianico (Taurasi) and Fiano (Avellino). Unique volcanic terroir.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente", "temperature_en": "Warm", "rainfall_pt": "800mm/ano", "rainfall_en": "800mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Vulcânico (tufo, cinzas), calcário", "soil_en": "Volcanic (tuff, ash), limestone", "altitude_pt": "300-700m", "altitude_en": "300-700m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Aglianico", "Fiano", "Greco"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos potentes (Taurasi)", "Brancos minerais"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Powerful reds (Taurasi)", "Mineral whites"},
	},
	{
		RegionID: "puglia", CountryID: "italy", Name: "Puglia", NamePT: "Puglia", NameEN: "Puglia",
		DescriptionPT: "O calcanhar da bota italiana, maior produtor de volume. Primitivo (Zinfandel) e vinhos generosos.",
		DescriptionEN: "The heel of Italy's boot, largest volume producer. Primitivo (Zinfandel) and generous wines.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo quente", "type_en": "Hot Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Terra rossa, calcário, argila", "soil_en": "Terra rossa, limestone, clay", "altitude_pt": "0-400m", "altitude_en": "0-400m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Primitivo", "Negroamaro", "Nero di Troia"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos concentrados e frutados"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Concentrated, fruity reds"},
	},
	{
		RegionID: "abruzzo", CountryID: "italy", Name: "Abruzzo", NamePT: "Abruzzo", NameEN: "Abruzzo",
		DescriptionPT: "Centro-leste da Itália, famosa por Montepulciano d'Abruzzo - vinhos tintos acessíveis e frutados.",
		DescriptionEN: "Central-eastern Italy, famous for Montepulciano d'Abruzzo - accessible, fruity red wines.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo moderado", "type_en": "Moderate Mediterranean", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila, calcário, aluvial", "soil_en": "Clay, limestone, alluvial", "altitude_pt": "200-600m", "altitude_en": "200-600m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Montepulciano", "Trebbiano"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos frutados acessíveis"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Accessible fruity reds"},
	},
	{
		RegionID: "marche", CountryID: "italy", Name: "Marche", NamePT: "Marche", NameEN: "Marche",
		DescriptionPT: "Costa adriática, conhecida pelo branco Verdicchio de alta acidez e potencial de guarda.",
		DescriptionEN: "Adriatic coast, known for high-acid Verdicchio white with aging potential.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, argila, arenito", "soil_en": "Limestone, clay, sandstone", "altitude_pt": "200-500m", "altitude_en": "200-500m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Verdicchio", "Montepulciano"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos com potencial de guarda"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Age-worthy whites"},
	},
	{
		RegionID: "umbria", CountryID: "italy", Name: "Umbria", NamePT: "Úmbria", NameEN: "Umbria",
		DescriptionPT: "Coração verde da Itália, lar do tânico Sagrantino de Montefalco e do branco Orvieto.",
		DescriptionEN: "Green heart of Italy, home of tannic Sagrantino di Montefalco and white Orvieto.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "800mm/ano", "rainfall_en": "800mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila, calcário, tufo vulcânico", "soil_en": "Clay, limestone, volcanic tuff", "altitude_pt": "200-500m", "altitude_en": "200-500m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Sagrantino", "Sangiovese", "Grechetto"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos muito tânicos", "Brancos frescos (Orvieto)"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Highly tannic reds", "Fresh whites (Orvieto)"},
	},
	{
		RegionID: "friuli", CountryID: "italy", Name: "Friuli-Venezia Giulia", NamePT: "Friuli-Venezia Giulia", NameEN: "Friuli-Venezia Giulia",
		DescriptionPT: "Nordeste da Itália, produzindo alguns dos melhores brancos italianos. Pioneiro dos vinhos laranjas.",
		DescriptionEN: "Northeastern Italy, producing some of Italy's best whites. Pioneer of orange wines.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Frio a moderado", "temperature_en": "Cool to moderate", "rainfall_pt": "1200mm/ano", "rainfall_en": "1200mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Ponca (marga), flysch, aluvial", "soil_en": "Ponca (marl), flysch, alluvial", "altitude_pt": "100-400m", "altitude_en": "100-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Pinot Grigio", "Friulano", "Ribolla Gialla", "Sauvignon Blanc"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos complexos", "Vinhos laranjas"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Complex whites", "Orange wines"},
	},
	{
		RegionID: "sardinia", CountryID: "italy", Name: "Sardinia", NamePT: "Sardenha", NameEN: "Sardinia",
		DescriptionPT: "Ilha com tradição vinícola antiga. Cannonau (Grenache) tinto e Vermentino branco dominam.",
		DescriptionEN: "Island with ancient winemaking tradition. Red Cannonau (Grenache) and white Vermentino dominate.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente e ventoso", "temperature_en": "Warm and windy", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito, xisto, calcário, areia", "soil_en": "Granite, schist, limestone, sand", "altitude_pt": "0-700m", "altitude_en": "0-700m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Cannonau", "Vermentino", "Carignano"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos encorpados", "Brancos frescos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Full-bodied reds", "Fresh whites"},
	},
	{
		RegionID: "lombardy", CountryID: "italy", Name: "Lombardy", NamePT: "Lombardia", NameEN: "Lombardy",
		DescriptionPT: "Norte da Itália, incluindo Franciacorta (espumantes) e Valtellina (Nebbiolo de altitude).",
		DescriptionEN: "Northern Italy, including Franciacorta (sparkling) and Valtellina (altitude Nebbiolo).",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Frio a moderado", "temperature_en": "Cool to moderate", "rainfall_pt": "1000mm/ano", "rainfall_en": "1000mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Morena glacial, xisto, argila", "soil_en": "Glacial moraine, schist, clay", "altitude_pt": "200-800m", "altitude_en": "200-800m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Chardonnay", "Pinot Nero", "Nebbiolo"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Espumantes (Franciacorta)", "Tintos alpinos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Sparkling (Franciacorta)", "Alpine reds"},
	},
	// spain
	{
		RegionID: "rioja", CountryID: "spain", Name: "Rioja", NamePT: "Rioja", NameEN: "Rioja",
		DescriptionPT: "A região mais prestigiosa da Espanha, conhecida por Tempranillo envelhecido em carvalho.",
		DescriptionEN: "Spain's most prestigious region, known for oak-aged Tempranillo.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental moderado", "type_en": "Moderate continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "400-500mm/ano", "rainfall_en": "400-500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila calcária, argila ferruginosa, aluvial", "soil_en": "Calcareous clay, iron-rich clay, alluvial", "altitude_pt": "400-700m", "altitude_en": "400-700m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Tempranillo", "Garnacha", "Graciano", "Viura"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos envelhecidos (Crianza, Reserva, Gran Reserva)", "Brancos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Aged reds (Crianza, Reserva, Gran Reserva)", "Whites"},
	},
	{
		RegionID: "ribera_del_duero", CountryID: "spain", Name: "Ribera del Duero", NamePT: "Ribera del Duero", NameEN: "Ribera del Duero",
		DescriptionPT: "Castilla y León, produzindo Tempranillo potente de altitude. Rival de Rioja em prestígio.",
		DescriptionEN: "Castilla y León, producing powerful altitude Tempranillo. Rioja's rival in prestige.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental extremo", "type_en": "Extreme continental", "temperature_pt": "Verões quentes, invernos frios", "temperature_en": "Hot summers, cold winters", "rainfall_pt": "450mm/ano", "rainfall_en": "450mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, argila, cascalho", "soil_en": "Limestone, clay, gravel", "altitude_pt": "750-1000m", "altitude_en": "750-1000m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Tempranillo", "Cabernet Sauvignon"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos potentes e concentrados"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Powerful, concentrated reds"},
	},
	{
		RegionID: "priorat", CountryID: "spain", Name: "Priorat", NamePT: "Priorat", NameEN: "Priorat",
		DescriptionPT: "Catalunha, renascida nos anos 1980. Solos de licorella (xisto) e vinhos potentes.",
		DescriptionEN: "Catalonia, reborn in the 1980s. Licorella (schist) soils and powerful wines.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo quente", "type_en": "Hot Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "400mm/ano", "rainfall_en": "400mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Licorella (xisto com mica)", "soil_en": "Licorella (schist with mica)", "altitude_pt": "200-700m em terraços íngremes", "altitude_en": "200-700m on steep terraces", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Garnacha", "Cariñena", "Cabernet Sauvignon"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos concentrados e minerais"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Concentrated, mineral reds"},
	},
	{
		RegionID: "rias_baixas", CountryID: "spain", Name: "Rías Baixas", NamePT: "Rías Baixas", NameEN: "Rías Baixas",
		DescriptionPT: "Galícia atlântica, produzindo brancos aromáticos de Albariño.",
		DescriptionEN: "Atlantic Galicia, producing aromatic Albariño whites.",
		Climate:       datatypes.JSON(`{"type_pt": "Atlântico", "type_en": "Atlantic", "temperature_pt": "Frio e úmido", "temperature_en": "Cool and humid", "rainfall_pt": "1500mm/ano", "rainfall_en": "1500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito, areia, aluvial", "soil_en": "Granite, sand, alluvial", "altitude_pt": "0-300m", "altitude_en": "0-300m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Albariño"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos aromáticos e frescos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Aromatic, fresh whites"},
	},
	{
		RegionID: "rueda", CountryID: "spain", Name: "Rueda", NamePT: "Rueda", NameEN: "Rueda",
		DescriptionPT: "Castilla y León, especializada em Verdejo aromático e refrescante.",
		DescriptionEN: "Castilla y León, specializing in aromatic, refreshing Verdejo.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Extremos térmicos", "temperature_en": "Temperature extremes", "rainfall_pt": "400mm/ano", "rainfall_en": "400mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Cascalho, areia, argila", "soil_en": "Gravel, sand, clay", "altitude_pt": "700-800m", "altitude_en": "700-800m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Verdejo", "Sauvignon Blanc"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos herbáceos e refrescantes"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Herbaceous, refreshing whites"},
	},
	{
		RegionID: "penedes", CountryID: "spain", Name: "Penedès", NamePT: "Penedès", NameEN: "Penedès",
		DescriptionPT: "Catalunha, coração da produção de Cava.",
		DescriptionEN: "Catalonia, heart of Cava production.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "550mm/ano", "rainfall_en": "550mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, argila, areia", "soil_en": "Limestone, clay, sand", "altitude_pt": "200-800m", "altitude_en": "200-800m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Macabeo", "Xarel·lo", "Parellada", "Garnacha"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Cava (espumante)", "Brancos tranquilos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Cava (sparkling)", "Still whites"},
	},
	{
		RegionID: "jerez", CountryID: "spain", Name: "Jerez", NamePT: "Jerez", NameEN: "Jerez (Sherry)",
		DescriptionPT: "Andaluzia, única região para Sherry autêntico. Sistema de solera.",
		DescriptionEN: "Andalusia, only region for authentic Sherry. Solera system.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo quente", "type_en": "Hot Mediterranean", "temperature_pt": "Quente", "temperature_en": "Hot", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Albariza (giz branco)", "soil_en": "Albariza (white chalk)", "altitude_pt": "0-100m", "altitude_en": "0-100m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Palomino Fino", "Pedro Ximénez", "Moscatel"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Fino", "Manzanilla", "Oloroso", "PX"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Fino", "Manzanilla", "Oloroso", "PX"},
	},
	{
		RegionID: "bierzo", CountryID: "spain", Name: "Bierzo", NamePT: "Bierzo", NameEN: "Bierzo",
		DescriptionPT: "Noroeste da Espanha, produzindo Mencía elegante comparada a Pinot Noir.",
		DescriptionEN: "Northwestern Spain, producing elegant Mencía compared to Pinot Noir.",
		Climate:       datatypes.JSON(`{"type_pt": "Atlântico-continental", "type_en": "Atlantic-continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Ardósia, quartzito, areia", "soil_en": "Slate, quartzite, sand", "altitude_pt": "450-1000m", "altitude_en": "450-1000m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Mencía", "Godello"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos elegantes e florais"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant, floral reds"},
	},
	{
		RegionID: "navarra", CountryID: "spain", Name: "Navarra", NamePT: "Navarra", NameEN: "Navarra",
		DescriptionPT: "Vizinha de Rioja, conhecida por rosés e vinhos tintos de valor.",
		DescriptionEN: "Rioja's neighbor, known for rosés and value reds.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental a mediterrâneo", "type_en": "Continental to Mediterranean", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila, calcário, aluvial", "soil_en": "Clay, limestone, alluvial", "altitude_pt": "250-600m", "altitude_en": "250-600m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Garnacha", "Tempranillo", "Cabernet Sauvignon"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Rosés", "Tintos de valor"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Rosés", "Value reds"},
	},
	{
		RegionID: "jumilla", CountryID: "spain", Name: "Jumilla", NamePT: "Jumilla", NameEN: "Jumilla",
		DescriptionPT: "Murcia, especializada em Monastrell (Mourvèdre) potente de vinhas velhas.",
		DescriptionEN: "Murcia, specializing in powerful old-vine Monastrell (Mourvèdre).",
		Climate:       datatypes.JSON(`{"type_pt": "Continental-mediterrâneo", "type_en": "Continental-Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "300mm/ano", "rainfall_en": "300mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, argila, areia", "soil_en": "Limestone, clay, sand", "altitude_pt": "400-800m", "altitude_en": "400-800m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Monastrell", "Garnacha"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos concentrados de vinhas velhas"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Concentrated old-vine reds"},
	},
	{
		RegionID: "toro", CountryID: "spain", Name: "Toro", NamePT: "Toro", NameEN: "Toro",
		DescriptionPT: "Castilla y León, produzindo Tempranillo extremamente potente (Tinta de Toro).",
		DescriptionEN: "Castilla y León, producing extremely powerful Tempranillo (Tinta de Toro).",
		Climate:       datatypes.JSON(`{"type_pt": "Continental extremo", "type_en": "Extreme continental", "temperature_pt": "Verões muito quentes", "temperature_en": "Very hot summers", "rainfall_pt": "350mm/ano", "rainfall_en": "350mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila com cascalho, areia", "soil_en": "Clay with gravel, sand", "altitude_pt": "600-800m", "altitude_en": "600-800m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Tempranillo"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos muito potentes e concentrados"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Very powerful, concentrated reds"},
	},
	{
		RegionID: "valdeorras", CountryID: "spain", Name: "Valdeorras", NamePT: "Valdeorras", NameEN: "Valdeorras",
		DescriptionPT: "Galícia interior, produzindo brancos de Godello de alta qualidade.",
		DescriptionEN: "Interior Galicia, producing high-quality Godello whites.",
		Climate:       datatypes.JSON(`{"type_pt": "Atlântico-continental", "type_en": "Atlantic-continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "850mm/ano", "rainfall_en": "850mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Ardósia, granito", "soil_en": "Slate, granite", "altitude_pt": "300-700m", "altitude_en": "300-700m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Godello", "Mencía"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos minerais e complexos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Mineral, complex whites"},
	},
	// portugal
	{
		RegionID: "douro", CountryID: "portugal", Name: "Douro", NamePT: "Douro", NameEN: "Douro",
		DescriptionPT: "Património Mundial da UNESCO, produzindo Porto e vinhos tintos de classe mundial.",
		DescriptionEN: "UNESCO World Heritage, producing Port and world-class red wines.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental mediterrâneo", "type_en": "Continental Mediterranean", "temperature_pt": "Verões muito quentes", "temperature_en": "Very hot summers", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Xisto (schist)", "soil_en": "Schist", "altitude_pt": "100-700m em socalcos", "altitude_en": "100-700m on terraces", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Touriga Nacional", "Touriga Franca", "Tinta Roriz", "Tinta Cão"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Porto (Ruby, Tawny, Vintage)", "Tintos secos premium"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Port (Ruby, Tawny, Vintage)", "Premium dry reds"},
	},
	{
		RegionID: "dao", CountryID: "portugal", Name: "Dão", NamePT: "Dão", NameEN: "Dão",
		DescriptionPT: "Centro de Portugal, produzindo tintos elegantes e brancos de Encruzado.",
		DescriptionEN: "Central Portugal, producing elegant reds and Encruzado whites.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "1200mm/ano", "rainfall_en": "1200mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito", "soil_en": "Granite", "altitude_pt": "400-800m", "altitude_en": "400-800m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Touriga Nacional", "Jaen", "Encruzado"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos elegantes", "Brancos minerais"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant reds", "Mineral whites"},
	},
	{
		RegionID: "vinho_verde", CountryID: "portugal", Name: "Vinho Verde", NamePT: "Vinho Verde", NameEN: "Vinho Verde",
		DescriptionPT: "Noroeste de Portugal, produzindo brancos leves e frescos. Alvarinho premium.",
		DescriptionEN: "Northwestern Portugal, producing light, fresh whites. Premium Alvarinho.",
		Climate:       datatypes.JSON(`{"type_pt": "Atlântico", "type_en": "Atlantic", "temperature_pt": "Frio e úmido", "temperature_en": "Cool and humid", "rainfall_pt": "1500mm/ano", "rainfall_en": "1500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito, xisto", "soil_en": "Granite, schist", "altitude_pt": "0-400m", "altitude_en": "0-400m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Alvarinho", "Loureiro", "Arinto"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos leves e refrescantes", "Alvarinho premium"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Light, refreshing whites", "Premium Alvarinho"},
	},
	{
		RegionID: "alentejo", CountryID: "portugal", Name: "Alentejo", NamePT: "Alentejo", NameEN: "Alentejo",
		DescriptionPT: "Sul de Portugal, maior região vinícola do país. Vinhos tintos maduros e frutados.",
		DescriptionEN: "Southern Portugal, country's largest wine region. Ripe, fruity red wines.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo quente", "type_en": "Hot Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Xisto, granito, argila, calcário", "soil_en": "Schist, granite, clay, limestone", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Aragonez", "Trincadeira", "Alicante Bouschet", "Antão Vaz"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos frutados e acessíveis", "Brancos frescos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Fruity, accessible reds", "Fresh whites"},
	},
	{
		RegionID: "bairrada", CountryID: "portugal", Name: "Bairrada", NamePT: "Bairrada", NameEN: "Bairrada",
		DescriptionPT: "Litoral centro, conhecida pela uva Baga tânica. Excelentes espumantes.",
		DescriptionEN: "Central coast, known for tannic Baga grape. Excellent sparkling wines.",
		Climate:       datatypes.JSON(`{"type_pt": "Atlântico", "type_en": "Atlantic", "temperature_pt": "Moderado e úmido", "temperature_en": "Moderate and humid", "rainfall_pt": "1000mm/ano", "rainfall_en": "1000mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila, calcário, areia", "soil_en": "Clay, limestone, sand", "altitude_pt": "0-100m", "altitude_en": "0-100m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Baga", "Maria Gomes"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos tânicos de guarda", "Espumantes"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Tannic age-worthy reds", "Sparkling wines"},
	},
	{
		RegionID: "setubal", CountryID: "portugal", Name: "Península de Setúbal", NamePT: "Península de Setúbal", NameEN: "Setúbal Peninsula",
		DescriptionPT: "Sul de Lisboa, famosa pelo Moscatel de Setúbal fortificado.",
		DescriptionEN: "South of Lisbon, famous for fortified Moscatel de Setúbal.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Warm and dry", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Areia, argila, calcário", "soil_en": "Sand, clay, limestone", "altitude_pt": "0-200m", "altitude_en": "0-200m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Castelão", "Moscatel"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Moscatel fortificado", "Tintos frutados"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Fortified Moscatel", "Fruity reds"},
	},
	// germany
	{
		RegionID: "mosel", CountryID: "germany", Name: "Mosel", NamePT: "Mosel", NameEN: "Mosel",
		DescriptionPT: "Vale do rio Mosel, produzindo os Rieslings mais elegantes e minerais do mundo.",
		DescriptionEN: "Mosel river valley, producing the world's most elegant, mineral Rieslings.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "650mm/ano", "rainfall_en": "650mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Ardósia azul e cinza", "soil_en": "Blue and grey slate", "altitude_pt": "100-350m em encostas íngremes", "altitude_en": "100-350m on steep slopes", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Riesling"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Riesling do seco ao doce", "TBA", "Eiswein"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Riesling from dry to sweet", "TBA", "Eiswein"},
	},
	{
		RegionID: "rheingau", CountryID: "germany", Name: "Rheingau", NamePT: "Rheingau", NameEN: "Rheingau",
		DescriptionPT: "Berço do Riesling seco alemão. Orientação sul ideal.",
		DescriptionEN: "Birthplace of dry German Riesling. Ideal south-facing orientation.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "550mm/ano", "rainfall_en": "550mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Ardósia, quartzito, loess", "soil_en": "Slate, quartzite, loess", "altitude_pt": "100-300m", "altitude_en": "100-300m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Riesling", "Spätburgunder"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Riesling seco premium"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Premium dry Riesling"},
	},
	{
		RegionID: "pfalz", CountryID: "germany", Name: "Pfalz", NamePT: "Pfalz", NameEN: "Pfalz",
		DescriptionPT: "Segunda maior região da Alemanha, clima mais quente. Riesling e Pinot Noir.",
		DescriptionEN: "Germany's second largest region, warmer climate. Riesling and Pinot Noir.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental moderado", "type_en": "Moderate continental", "temperature_pt": "O mais quente da Alemanha", "temperature_en": "Germany's warmest", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Basalto, calcário, arenito, argila", "soil_en": "Basite, limestone, sandstone, clay", "altitude_pt": "100-400m", "altitude_en": "100-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Riesling", "Spätburgunder", "Dornfelder"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Riesling", "Tintos de Pinot Noir"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Riesling", "Pinot Noir reds"},
	},
	{
		RegionID: "baden", CountryID: "germany", Name: "Baden", NamePT: "Baden", NameEN: "Baden",
		DescriptionPT: "Região mais quente e ensolarada da Alemanha. Especializada em Pinot Noir.",
		DescriptionEN: "Germany's warmest, sunniest region. Specializing in Pinot Noir.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental quente", "type_en": "Warm continental", "temperature_pt": "Quente para a Alemanha", "temperature_en": "Warm for Germany", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário, loess, vulcânico", "soil_en": "Limestone, loess, volcanic", "altitude_pt": "200-500m", "altitude_en": "200-500m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Spätburgunder", "Grauburgunder", "Weissburgunder"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos de Pinot Noir", "Brancos borgonheses"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Pinot Noir reds", "Burgundian whites"},
	},
	{
		RegionID: "franken", CountryID: "germany", Name: "Franken", NamePT: "Francônia", NameEN: "Franken",
		DescriptionPT: "Bavária, conhecida por Silvaner em garrafas Bocksbeutel. Vinhos secos e terrosos.",
		DescriptionEN: "Bavaria, known for Silvaner in Bocksbeutel bottles. Dry, earthy wines.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Extremos térmicos", "temperature_en": "Temperature extremes", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Calcário (Muschelkalk), arenito", "soil_en": "Shell limestone (Muschelkalk), sandstone", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Silvaner", "Müller-Thurgau", "Riesling"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos secos e terrosos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Dry, earthy whites"},
	},
	{
		RegionID: "ahr", CountryID: "germany", Name: "Ahr", NamePT: "Ahr", NameEN: "Ahr",
		DescriptionPT: "Pequena região ao norte, especializada em Pinot Noir de alta qualidade.",
		DescriptionEN: "Small northern region, specializing in high-quality Pinot Noir.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Ardósia, basalto, loess", "soil_en": "Slate, basalt, loess", "altitude_pt": "100-300m", "altitude_en": "100-300m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Spätburgunder"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos elegantes de Pinot Noir"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant Pinot Noir reds"},
	},
	{
		RegionID: "rheinhessen", CountryID: "germany", Name: "Rheinhessen", NamePT: "Rheinhessen", NameEN: "Rheinhessen",
		DescriptionPT: "Maior região vinícola da Alemanha. Grande variedade de estilos.",
		DescriptionEN: "Germany's largest wine region. Wide variety of styles.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Loess, calcário, ardósia vermelha", "soil_en": "Loess, limestone, red slate", "altitude_pt": "100-300m", "altitude_en": "100-300m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Riesling", "Müller-Thurgau", "Silvaner", "Dornfelder"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Diversos estilos de branco e tinto"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Various white and red styles"},
	},
	// austria
	{
		RegionID: "wachau", CountryID: "austria", Name: "Wachau", NamePT: "Wachau", NameEN: "Wachau",
		DescriptionPT: "Vale do Danúbio, Patrimônio da UNESCO. Riesling e Grüner Veltliner de classe mundial.",
		DescriptionEN: "Danube valley, UNESCO Heritage. World-class Riesling and Grüner Veltliner.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Gnaisse, granito, loess", "soil_en": "Gneiss, granite, loess", "altitude_pt": "200-450m em terraços", "altitude_en": "200-450m on terraces", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Grüner Veltliner", "Riesling"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos secos (Smaragd, Federspiel, Steinfeder)"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Dry whites (Smaragd, Federspiel, Steinfeder)"},
	},
	{
		RegionID: "kamptal", CountryID: "austria", Name: "Kamptal", NamePT: "Kamptal", NameEN: "Kamptal",
		DescriptionPT: "Norte da Áustria, produzindo Grüner Veltliner expressivo.",
		DescriptionEN: "Northern Austria, producing expressive Grüner Veltliner.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Loess, gnaisse, calcário", "soil_en": "Loess, gneiss, limestone", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Grüner Veltliner", "Riesling"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos secos com notas de pimenta branca"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Dry whites with white pepper notes"},
	},
	{
		RegionID: "kremstal", CountryID: "austria", Name: "Kremstal", NamePT: "Kremstal", NameEN: "Kremstal",
		DescriptionPT: "Entre Wachau e Kamptal, combinando elementos de ambos.",
		DescriptionEN: "Between Wachau and Kamptal, combining elements of both.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Loess, gnaisse primário", "soil_en": "Loess, primary gneiss", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Grüner Veltliner", "Riesling"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos elegantes e secos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant, dry whites"},
	},
	// usa
	{
		RegionID: "napa_valley", CountryID: "usa", Name: "Napa Valley", NamePT: "Vale de Napa", NameEN: "Napa Valley",
		DescriptionPT: "A região mais prestigiosa dos EUA, famosa por Cabernet Sauvignon de classe mundial.",
		DescriptionEN: "USA's most prestigious region, famous for world-class Cabernet Sauvignon.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente", "temperature_en": "Warm", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Vulcânico, aluvial, cascalho", "soil_en": "Volcanic, alluvial, gravel", "altitude_pt": "0-600m", "altitude_en": "0-600m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Cabernet Sauvignon", "Merlot", "Chardonnay"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos encorpados de Cabernet", "Chardonnay com carvalho"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Full-bodied Cabernet reds", "Oaky Chardonnay"},
	},
	{
		RegionID: "sonoma", CountryID: "usa", Name: "Sonoma", NamePT: "Sonoma", NameEN: "Sonoma",
		DescriptionPT: "Vizinha de Napa, mais diversa em climas e estilos. Excelentes Pinot Noir e Chardonnay.",
		DescriptionEN: "Napa's neighbor, more diverse in climates and styles. Excellent Pinot Noir and Chardonnay.",
		Climate:       datatypes.JSON(`{"type_pt": "Variado (costeiro a interior)", "type_en": "Varied (coastal to inland)", "temperature_pt": "Frio a quente", "temperature_en": "Cool to warm", "rainfall_pt": "750mm/ano", "rainfall_en": "750mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Vulcânico, argila, areia", "soil_en": "Volcanic, clay, sand", "altitude_pt": "0-500m", "altitude_en": "0-500m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Pinot Noir", "Chardonnay", "Zinfandel"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Pinot Noir elegante", "Chardonnay costeiro", "Zinfandel potente"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant Pinot Noir", "Coastal Chardonnay", "Powerful Zinfandel"},
	},
	{
		RegionID: "oregon", CountryID: "usa", Name: "Oregon", NamePT: "Oregon", NameEN: "Oregon",
		DescriptionPT: "Noroeste dos EUA, clima frio ideal para Pinot Noir. Willamette Valley.",
		DescriptionEN: "Pacific Northwest, cool climate ideal for Pinot Noir. Willamette Valley.",
		Climate:       datatypes.JSON(`{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "1000mm/ano", "rainfall_en": "1000mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Jory (vulcânico vermelho), sedimentar", "soil_en": "Jory (red volcanic), sedimentary", "altitude_pt": "60-300m", "altitude_en": "60-300m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Pinot Noir", "Pinot Gris", "Chardonnay"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Pinot Noir estilo borgonhês"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Burgundian-style Pinot Noir"},
	},
	{
		RegionID: "washington", CountryID: "usa", Name: "Washington State", NamePT: "Estado de Washington", NameEN: "Washington State",
		DescriptionPT: "Segundo maior produtor dos EUA. Columbia Valley com excelentes Cabernet, Merlot e Syrah.",
		DescriptionEN: "Second largest US producer. Columbia Valley with excellent Cabernet, Merlot and Syrah.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental desértico", "type_en": "Continental desert", "temperature_pt": "Dias quentes, noites frias", "temperature_en": "Hot days, cool nights", "rainfall_pt": "200mm/ano (irrigado)", "rainfall_en": "200mm/year (irrigated)"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Basalto, loess, areia", "soil_en": "Basalt, loess, sand", "altitude_pt": "100-600m", "altitude_en": "100-600m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Cabernet Sauvignon", "Merlot", "Syrah", "Riesling"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos estruturados", "Riesling de clima frio"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Structured reds", "Cool-climate Riesling"},
	},
	{
		RegionID: "finger_lakes", CountryID: "usa", Name: "Finger Lakes", NamePT: "Finger Lakes", NameEN: "Finger Lakes",
		DescriptionPT: "Nova York, especializada em Riesling de clima frio.",
		DescriptionEN: "New York, specializing in cool-climate Riesling.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental frio", "type_en": "Cool continental", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "850mm/ano", "rainfall_en": "850mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Xisto, calcário, cascalho glacial", "soil_en": "Shale, limestone, glacial gravel", "altitude_pt": "150-400m", "altitude_en": "150-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Riesling", "Cabernet Franc", "Gewürztraminer"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Riesling de todos os estilos"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Riesling in all styles"},
	},
	// argentina
	{
		RegionID: "mendoza", CountryID: "argentina", Name: "Mendoza", NamePT: "Mendoza", NameEN: "Mendoza",
		DescriptionPT: "Coração vinícola da Argentina, produzindo 70% dos vinhos do país. Malbec de altitude.",
		DescriptionEN: "Argentina's wine heartland, producing 70% of the country's wines. Altitude Malbec.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental desértico", "type_en": "Continental desert", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "200mm/ano (irrigado)", "rainfall_en": "200mm/year (irrigated)"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Aluvial, cascalho, areia, calcário", "soil_en": "Alluvial, gravel, sand, limestone", "altitude_pt": "600-1500m", "altitude_en": "600-1500m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Malbec", "Cabernet Sauvignon", "Bonarda"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Malbec frutado e encorpado"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Fruity, full-bodied Malbec"},
	},
	{
		RegionID: "salta", CountryID: "argentina", Name: "Salta", NamePT: "Salta", NameEN: "Salta",
		DescriptionPT: "Noroeste da Argentina, vinhedos entre os mais altos do mundo (até 3.000m). Torrontés aromático.",
		DescriptionEN: "Northwestern Argentina, among the world's highest vineyards (up to 3,000m). Aromatic Torrontés.",
		Climate:       datatypes.JSON(`{"type_pt": "Desértico de altitude", "type_en": "High altitude desert", "temperature_pt": "Dias quentes, noites muito frias", "temperature_en": "Hot days, very cold nights", "rainfall_pt": "150mm/ano", "rainfall_en": "150mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Arenoso, calcário, cascalho", "soil_en": "Sandy, limestone, gravel", "altitude_pt": "1500-3000m", "altitude_en": "1500-3000m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Torrontés", "Malbec"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Torrontés aromático", "Malbec de altitude"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Aromatic Torrontés", "Altitude Malbec"},
	},
	{
		RegionID: "la_rioja_arg", CountryID: "argentina", Name: "La Rioja (Argentina)", NamePT: "La Rioja (Argentina)", NameEN: "La Rioja (Argentina)",
		DescriptionPT: "Uma das regiões mais antigas da Argentina, conhecida por Torrontés.",
		DescriptionEN: "One of Argentina's oldest regions, known for Torrontés.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental desértico", "type_en": "Continental desert", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "150mm/ano", "rainfall_en": "150mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Arenoso, aluvial", "soil_en": "Sandy, alluvial", "altitude_pt": "800-1500m", "altitude_en": "800-1500m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Torrontés", "Bonarda"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Torrontés branco aromático"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Aromatic white Torrontés"},
	},
	// chile
	{
		RegionID: "maipo", CountryID: "chile", Name: "Maipo Valley", NamePT: "Vale do Maipo", NameEN: "Maipo Valley",
		DescriptionPT: "A região mais prestigiosa do Chile, nos arredores de Santiago. Cabernet Sauvignon de classe mundial.",
		DescriptionEN: "Chile's most prestigious region, near Santiago. World-class Cabernet Sauvignon.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Warm and dry", "rainfall_pt": "350mm/ano", "rainfall_en": "350mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Aluvial, cascalho, argila", "soil_en": "Alluvial, gravel, clay", "altitude_pt": "400-800m", "altitude_en": "400-800m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Cabernet Sauvignon", "Carménère", "Merlot"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Cabernet Sauvignon clássico"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Classic Cabernet Sauvignon"},
	},
	{
		RegionID: "colchagua", CountryID: "chile", Name: "Colchagua Valley", NamePT: "Vale de Colchagua", NameEN: "Colchagua Valley",
		DescriptionPT: "Sul de Santiago, produzindo tintos potentes e frutados. Carménère é especialidade.",
		DescriptionEN: "South of Santiago, producing powerful, fruity reds. Carménère is a specialty.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente", "temperature_en": "Warm", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila, granito, aluvial", "soil_en": "Clay, granite, alluvial", "altitude_pt": "100-400m", "altitude_en": "100-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Carménère", "Cabernet Sauvignon", "Syrah"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Carménère herbáceo", "Tintos encorpados"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Herbaceous Carménère", "Full-bodied reds"},
	},
	{
		RegionID: "casablanca", CountryID: "chile", Name: "Casablanca Valley", NamePT: "Vale de Casablanca", NameEN: "Casablanca Valley",
		DescriptionPT: "Região costeira fria, ideal para brancos e Pinot Noir.",
		DescriptionEN: "Cool coastal region, ideal for whites and Pinot Noir.",
		Climate:       datatypes.JSON(`{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "450mm/ano", "rainfall_en": "450mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila, granito decomposto", "soil_en": "Clay, decomposed granite", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Sauvignon Blanc", "Chardonnay", "Pinot Noir"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos frescos e vibrantes", "Pinot Noir elegante"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Fresh, vibrant whites", "Elegant Pinot Noir"},
	},
	{
		RegionID: "leyda", CountryID: "chile", Name: "Leyda Valley", NamePT: "Vale de Leyda", NameEN: "Leyda Valley",
		DescriptionPT: "Região costeira extrema, produzindo brancos vibrantes e Pinot Noir elegante.",
		DescriptionEN: "Extreme coastal region, producing vibrant whites and elegant Pinot Noir.",
		Climate:       datatypes.JSON(`{"type_pt": "Marítimo muito frio", "type_en": "Very cool maritime", "temperature_pt": "Muito frio", "temperature_en": "Very cool", "rainfall_pt": "300mm/ano", "rainfall_en": "300mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito, argila, areia costeira", "soil_en": "Granite, clay, coastal sand", "altitude_pt": "100-300m", "altitude_en": "100-300m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Sauvignon Blanc", "Pinot Noir", "Chardonnay"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Sauvignon Blanc mineral", "Pinot Noir fresco"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Mineral Sauvignon Blanc", "Fresh Pinot Noir"},
	},
	{
		RegionID: "cachapoal", CountryID: "chile", Name: "Cachapoal Valley", NamePT: "Vale de Cachapoal", NameEN: "Cachapoal Valley",
		DescriptionPT: "Centro-sul do Chile, conhecida por Carménère e tintos maduros.",
		DescriptionEN: "Central-south Chile, known for Carménère and ripe reds.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente", "temperature_en": "Warm", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Aluvial, argila vermelha", "soil_en": "Alluvial, red clay", "altitude_pt": "200-500m", "altitude_en": "200-500m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Carménère", "Cabernet Sauvignon", "Merlot"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Tintos maduros e frutados"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Ripe, fruity reds"},
	},
	// australia
	{
		RegionID: "barossa_valley", CountryID: "australia", Name: "Barossa Valley", NamePT: "Vale de Barossa", NameEN: "Barossa Valley",
		DescriptionPT: "A região mais icônica da Austrália, famosa por Shiraz potente de vinhas velhas.",
		DescriptionEN: "Australia's most iconic region, famous for powerful old-vine Shiraz.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo quente", "type_en": "Warm Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "500mm/ano", "rainfall_en": "500mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Terra vermelha, areia, argila", "soil_en": "Red earth, sand, clay", "altitude_pt": "200-400m", "altitude_en": "200-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Shiraz", "Grenache", "Mataro"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Shiraz potente de vinhas velhas"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Powerful old-vine Shiraz"},
	},
	{
		RegionID: "mclaren_vale", CountryID: "australia", Name: "McLaren Vale", NamePT: "McLaren Vale", NameEN: "McLaren Vale",
		DescriptionPT: "Sul da Austrália, Shiraz e Grenache de alta qualidade com influência marítima.",
		DescriptionEN: "South Australia, high-quality Shiraz and Grenache with maritime influence.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Moderado a quente", "temperature_en": "Moderate to warm", "rainfall_pt": "550mm/ano", "rainfall_en": "550mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Areia, argila, calcário", "soil_en": "Sand, clay, limestone", "altitude_pt": "0-300m", "altitude_en": "0-300m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Shiraz", "Grenache", "Cabernet Sauvignon"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Shiraz elegante", "Blends GSM"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant Shiraz", "GSM blends"},
	},
	{
		RegionID: "coonawarra", CountryID: "australia", Name: "Coonawarra", NamePT: "Coonawarra", NameEN: "Coonawarra",
		DescriptionPT: "Famosa pelo solo terra rossa (argila vermelha sobre calcário). Cabernet Sauvignon de classe mundial.",
		DescriptionEN: "Famous for terra rossa soil (red clay over limestone). World-class Cabernet Sauvignon.",
		Climate:       datatypes.JSON(`{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Terra rossa sobre calcário", "soil_en": "Terra rossa over limestone", "altitude_pt": "50-70m", "altitude_en": "50-70m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Cabernet Sauvignon", "Shiraz"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Cabernet elegante e terroso"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant, earthy Cabernet"},
	},
	{
		RegionID: "hunter_valley", CountryID: "australia", Name: "Hunter Valley", NamePT: "Hunter Valley", NameEN: "Hunter Valley",
		DescriptionPT: "Nova Gales do Sul, Sémillon único que envelhece magnificamente e Shiraz terroso.",
		DescriptionEN: "New South Wales, unique Sémillon that ages magnificently and earthy Shiraz.",
		Climate:       datatypes.JSON(`{"type_pt": "Subtropical úmido", "type_en": "Humid subtropical", "temperature_pt": "Quente e úmido", "temperature_en": "Warm and humid", "rainfall_pt": "750mm/ano", "rainfall_en": "750mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila vermelha, aluvial, arenito", "soil_en": "Red clay, alluvial, sandstone", "altitude_pt": "50-150m", "altitude_en": "50-150m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Sémillon", "Shiraz", "Chardonnay"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Sémillon de guarda", "Shiraz terroso"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Age-worthy Sémillon", "Earthy Shiraz"},
	},
	{
		RegionID: "clare_valley", CountryID: "australia", Name: "Clare Valley", NamePT: "Clare Valley", NameEN: "Clare Valley",
		DescriptionPT: "Sul da Austrália, famosa por Riesling seco e mineral. Pioneira da tampa de rosca.",
		DescriptionEN: "South Australia, famous for dry, mineral Riesling. Screw cap pioneer.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Dias quentes, noites frias", "temperature_en": "Hot days, cool nights", "rainfall_pt": "600mm/ano", "rainfall_en": "600mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Ardósia, calcário, terra vermelha", "soil_en": "Slate, limestone, red earth", "altitude_pt": "400-500m", "altitude_en": "400-500m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Riesling", "Shiraz", "Cabernet Sauvignon"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Riesling seco e mineral"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Dry, mineral Riesling"},
	},
	{
		RegionID: "margaret_river", CountryID: "australia", Name: "Margaret River", NamePT: "Margaret River", NameEN: "Margaret River",
		DescriptionPT: "Oeste da Austrália, blends bordaleses elegantes e Chardonnay de classe mundial.",
		DescriptionEN: "Western Australia, elegant Bordeaux blends and world-class Chardonnay.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo marítimo", "type_en": "Maritime Mediterranean", "temperature_pt": "Moderado", "temperature_en": "Moderate", "rainfall_pt": "1100mm/ano", "rainfall_en": "1100mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito, laterita, calcário", "soil_en": "Granite, laterite, limestone", "altitude_pt": "0-200m", "altitude_en": "0-200m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Cabernet Sauvignon", "Chardonnay", "Sauvignon Blanc", "Sémillon"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Blends bordaleses", "Chardonnay premium"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Bordeaux blends", "Premium Chardonnay"},
	},
	{
		RegionID: "yarra_valley", CountryID: "australia", Name: "Yarra Valley", NamePT: "Yarra Valley", NameEN: "Yarra Valley",
		DescriptionPT: "Victoria, região de clima frio ideal para Pinot Noir e Chardonnay. Perto de Melbourne.",
		DescriptionEN: "Victoria, cool climate region ideal for Pinot Noir and Chardonnay. Near Melbourne.",
		Climate:       datatypes.JSON(`{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "1000mm/ano", "rainfall_en": "1000mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Argila vermelha vulcânica, areia", "soil_en": "Red volcanic clay, sand", "altitude_pt": "50-400m", "altitude_en": "50-400m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Pinot Noir", "Chardonnay", "Shiraz"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Pinot Noir elegante", "Espumantes"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant Pinot Noir", "Sparkling wines"},
	},
	// new_zealand
	{
		RegionID: "marlborough", CountryID: "new_zealand", Name: "Marlborough", NamePT: "Marlborough", NameEN: "Marlborough",
		DescriptionPT: "A maior e mais famosa região da Nova Zelândia, definindo o Sauvignon Blanc aromático mundial.",
		DescriptionEN: "New Zealand's largest and most famous region, defining world aromatic Sauvignon Blanc.",
		Climate:       datatypes.JSON(`{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio e ensolarado", "temperature_en": "Cool and sunny", "rainfall_pt": "650mm/ano", "rainfall_en": "650mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Cascalho aluvial, argila, silte", "soil_en": "Alluvial gravel, clay, silt", "altitude_pt": "0-200m", "altitude_en": "0-200m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Sauvignon Blanc", "Pinot Noir", "Chardonnay"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Sauvignon Blanc intensamente aromático"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Intensely aromatic Sauvignon Blanc"},
	},
	{
		RegionID: "central_otago", CountryID: "new_zealand", Name: "Central Otago", NamePT: "Central Otago", NameEN: "Central Otago",
		DescriptionPT: "Região continental mais ao sul do mundo, produzindo Pinot Noir excepcional.",
		DescriptionEN: "World's southernmost continental wine region, producing exceptional Pinot Noir.",
		Climate:       datatypes.JSON(`{"type_pt": "Continental", "type_en": "Continental", "temperature_pt": "Extremos térmicos", "temperature_en": "Temperature extremes", "rainfall_pt": "400mm/ano", "rainfall_en": "400mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Xisto, loess, cascalho glacial", "soil_en": "Schist, loess, glacial gravel", "altitude_pt": "200-450m", "altitude_en": "200-450m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Pinot Noir", "Riesling", "Pinot Gris"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Pinot Noir intenso e puro"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Intense, pure Pinot Noir"},
	},
	{
		RegionID: "martinborough", CountryID: "new_zealand", Name: "Martinborough", NamePT: "Martinborough", NameEN: "Martinborough",
		DescriptionPT: "Norte da Ilha Sul, produzindo Pinot Noir elegante em pequena escala.",
		DescriptionEN: "North of South Island, producing elegant small-scale Pinot Noir.",
		Climate:       datatypes.JSON(`{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio e seco", "temperature_en": "Cool and dry", "rainfall_pt": "700mm/ano", "rainfall_en": "700mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Cascalho aluvial, silte", "soil_en": "Alluvial gravel, silt", "altitude_pt": "0-100m", "altitude_en": "0-100m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Pinot Noir", "Sauvignon Blanc"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Pinot Noir elegante e estruturado"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Elegant, structured Pinot Noir"},
	},
	// south_africa
	{
		RegionID: "stellenbosch", CountryID: "south_africa", Name: "Stellenbosch", NamePT: "Stellenbosch", NameEN: "Stellenbosch",
		DescriptionPT: "A região mais prestigiosa da África do Sul, excelentes tintos e blends bordaleses.",
		DescriptionEN: "South Africa's most prestigious region, excellent reds and Bordeaux blends.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente", "temperature_en": "Warm", "rainfall_pt": "800mm/ano", "rainfall_en": "800mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito decomposto, arenito, xisto", "soil_en": "Decomposed granite, sandstone, shale", "altitude_pt": "100-600m", "altitude_en": "100-600m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Cabernet Sauvignon", "Pinotage", "Shiraz", "Chenin Blanc"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Blends bordaleses", "Pinotage único"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Bordeaux blends", "Unique Pinotage"},
	},
	{
		RegionID: "swartland", CountryID: "south_africa", Name: "Swartland", NamePT: "Swartland", NameEN: "Swartland",
		DescriptionPT: "Região renascentista com vinhos naturais e de vinhas velhas. Chenin Blanc e blends do Rhône.",
		DescriptionEN: "Renaissance region with natural and old-vine wines. Chenin Blanc and Rhône blends.",
		Climate:       datatypes.JSON(`{"type_pt": "Mediterrâneo", "type_en": "Mediterranean", "temperature_pt": "Quente e seco", "temperature_en": "Hot and dry", "rainfall_pt": "400mm/ano", "rainfall_en": "400mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Xisto, granito, argila", "soil_en": "Shale, granite, clay", "altitude_pt": "100-400m", "altitude_en": "100-400m", "maritime_influence": false}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Chenin Blanc", "Syrah", "Grenache", "Mourvèdre"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Chenin Blanc de vinhas velhas", "Blends do Rhône"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Old-vine Chenin Blanc", "Rhône blends"},
	},
	{
		RegionID: "constantia", CountryID: "south_africa", Name: "Constantia", NamePT: "Constantia", NameEN: "Constantia",
		DescriptionPT: "Região histórica perto da Cidade do Cabo, famosa no século 18 por vinhos doces.",
		DescriptionEN: "Historic region near Cape Town, famous in the 18th century for sweet wines.",
		Climate:       datatypes.JSON(`{"type_pt": "Marítimo frio", "type_en": "Cool maritime", "temperature_pt": "Frio", "temperature_en": "Cool", "rainfall_pt": "1000mm/ano", "rainfall_en": "1000mm/year"}`),
		Terroir:       datatypes.JSON(`{"soil_pt": "Granito decomposto, arenito", "soil_en": "Decomposed granite, sandstone", "altitude_pt": "100-400m", "altitude_en": "100-400m", "maritime_influence": true}`),
		KeyGrapes:     datatypes.JSONSlice[string]{"Sauvignon Blanc", "Sémillon"},
		WineStylesPT:  datatypes.JSONSlice[string]{"Brancos frescos", "Vin de Constance (doce histórico)"},
		WineStylesEN:  datatypes.JSONSlice[string]{"Fresh whites", "Vin de Constance (historic sweet)"},
	},
}
