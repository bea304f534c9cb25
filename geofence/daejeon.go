package geofence

import "github.com/bsm/hexfence/hexgrid"

// DefaultResolution is used to rasterise city boundaries.
const DefaultResolution = 8

// DaejeonSeed lies within Daejeon, near Seo-gu.
var DaejeonSeed = hexgrid.LatLng{Lat: 36.321655, Lng: 127.378953}

// DaejeonBoundary is the administrative outline of Daejeon, South Korea.
var DaejeonBoundary = Polygon{
	{Lat: 36.48679951624792, Lng: 127.40150573442256},
	{Lat: 36.486049226720844, Lng: 127.40237162713332},
	{Lat: 36.45493887822377, Lng: 127.40583116302797},
	{Lat: 36.454913086274914, Lng: 127.40629396019843},
	{Lat: 36.45662159419439, Lng: 127.43213116720865},
	{Lat: 36.45653731526793, Lng: 127.43378989155006},
	{Lat: 36.45509361223148, Lng: 127.46155957004515},
	{Lat: 36.455337148641355, Lng: 127.4617928230305},
	{Lat: 36.477063983032316, Lng: 127.47987139318172},
	{Lat: 36.47720999255097, Lng: 127.48061100717518},
	{Lat: 36.475797777779924, Lng: 127.48423168252953},
	{Lat: 36.4756241273186, Lng: 127.48427610887815},
	{Lat: 36.454788546508105, Lng: 127.4960880025384},
	{Lat: 36.45490693805522, Lng: 127.49646645707624},
	{Lat: 36.454045572323665, Lng: 127.5035961999129},
	{Lat: 36.45370091965119, Lng: 127.5037888450623},
	{Lat: 36.42524291590289, Lng: 127.49376705635758},
	{Lat: 36.42506434044689, Lng: 127.49391176970472},
	{Lat: 36.420317939994945, Lng: 127.53743516505264},
	{Lat: 36.42012291038361, Lng: 127.53778279146553},
	{Lat: 36.41927919632655, Lng: 127.54228073457993},
	{Lat: 36.41585756869269, Lng: 127.54185998818646},
	{Lat: 36.40845961594542, Lng: 127.5470727467962},
	{Lat: 36.408454519716564, Lng: 127.54707951164634},
	{Lat: 36.399675947569705, Lng: 127.55816517314781},
	{Lat: 36.399856150629894, Lng: 127.55878010175535},
	{Lat: 36.39914654004481, Lng: 127.55919218532583},
	{Lat: 36.39821888953578, Lng: 127.55967899075192},
	{Lat: 36.39518678315378, Lng: 127.55508024348465},
	{Lat: 36.39514713936509, Lng: 127.55494637061842},
	{Lat: 36.38380225513675, Lng: 127.52480467423321},
	{Lat: 36.35035287645941, Lng: 127.5193690338617},
	{Lat: 36.34006990064799, Lng: 127.50134180998748},
	{Lat: 36.23795395068193, Lng: 127.49257720191125},
	{Lat: 36.19672289194393, Lng: 127.44871641082584},
	{Lat: 36.212892945867274, Lng: 127.40799929928723},
	{Lat: 36.2622709500042, Lng: 127.39025797769695},
	{Lat: 36.262586342451286, Lng: 127.35950194982368},
	{Lat: 36.21890129271374, Lng: 127.36419718015068},
	{Lat: 36.203158372814976, Lng: 127.32394583489626},
	{Lat: 36.22081536998303, Lng: 127.31564105913714},
	{Lat: 36.23529359092193, Lng: 127.2831547927397},
	{Lat: 36.26495018611541, Lng: 127.28650666227946},
	{Lat: 36.264895312282356, Lng: 127.28624581898431},
	{Lat: 36.2760505815688, Lng: 127.25877186484053},
	{Lat: 36.32724953025797, Lng: 127.25975274393714},
	{Lat: 36.3448265782094, Lng: 127.27912600112028},
	{Lat: 36.414603964631645, Lng: 127.28212428234082},
	{Lat: 36.421915039124464, Lng: 127.29426961581308},
	{Lat: 36.42219502183513, Lng: 127.29425168764308},
	{Lat: 36.422208976417835, Lng: 127.3263167270464},
	{Lat: 36.450273038129, Lng: 127.35579857644919},
	{Lat: 36.499215976257155, Lng: 127.38008138312885},
	{Lat: 36.49953929874922, Lng: 127.38033654837668},
	{Lat: 36.499660645040414, Lng: 127.38096688868224},
	{Lat: 36.49992444824916, Lng: 127.38230967353526},
	{Lat: 36.500230690026456, Lng: 127.38385497104343},
	{Lat: 36.499444883432616, Lng: 127.38538373894964},
	{Lat: 36.498985556577466, Lng: 127.38626339999793},
	{Lat: 36.49195602619904, Lng: 127.39575988535204},
	{Lat: 36.491708392279, Lng: 127.39614094465608},
	{Lat: 36.48679951624792, Lng: 127.40150573442256},
}

// Daejeon returns the build configuration for Daejeon.
func Daejeon() *Config {
	return &Config{
		Boundary:   DaejeonBoundary,
		Seed:       DaejeonSeed,
		Resolution: DefaultResolution,
		Strict:     true,
	}
}
