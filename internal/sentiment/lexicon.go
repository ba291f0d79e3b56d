package sentiment

// valences is an AFINN-derived word list trimmed to vocabulary that shows up
// in short wellness journal entries. Values range -5..5.
var valences = map[string]float64{
	"abandoned":     -2,
	"abuse":         -3,
	"accomplish":    2,
	"accomplished":  2,
	"ache":          -2,
	"admire":        3,
	"adorable":      3,
	"adore":         3,
	"afraid":        -2,
	"aggressive":    -2,
	"agony":         -3,
	"alive":         1,
	"alone":         -2,
	"amazing":       4,
	"anger":         -3,
	"angry":         -3,
	"annoyed":       -2,
	"annoying":      -2,
	"anxiety":       -2,
	"anxious":       -2,
	"appreciate":    2,
	"appreciated":   2,
	"ashamed":       -2,
	"awesome":       4,
	"awful":         -3,
	"awkward":       -2,
	"bad":           -3,
	"beautiful":     3,
	"best":          3,
	"better":        2,
	"bitter":        -2,
	"bless":         2,
	"blessed":       3,
	"bliss":         4,
	"bored":         -2,
	"boring":        -3,
	"brave":         2,
	"bright":        1,
	"brilliant":     4,
	"broke":         -2,
	"broken":        -2,
	"burden":        -2,
	"calm":          2,
	"care":          2,
	"cared":         2,
	"careless":      -2,
	"celebrate":     3,
	"celebrated":    3,
	"charming":      3,
	"cheerful":      2,
	"cherish":       3,
	"comfort":       2,
	"comfortable":   2,
	"confident":     2,
	"confused":      -2,
	"content":       2,
	"cool":          1,
	"crap":          -3,
	"crazy":         -2,
	"cried":         -2,
	"crushed":       -2,
	"cry":           -1,
	"crying":        -2,
	"curious":       1,
	"cute":          2,
	"damn":          -4,
	"darkness":      -1,
	"dead":          -3,
	"defeated":      -2,
	"delight":       3,
	"delighted":     3,
	"depressed":     -2,
	"depressing":    -2,
	"despair":       -3,
	"devastated":    -2,
	"die":           -3,
	"difficult":     -1,
	"disappointed":  -2,
	"disappointing": -2,
	"disaster":      -2,
	"disgusted":     -3,
	"distracted":    -2,
	"dream":         1,
	"drained":       -2,
	"dull":          -2,
	"eager":         2,
	"easy":          1,
	"ecstatic":      4,
	"embarrassed":   -2,
	"empty":         -1,
	"encouraged":    2,
	"energetic":     2,
	"energized":     2,
	"enjoy":         2,
	"enjoyed":       2,
	"enjoying":      2,
	"excellent":     3,
	"excited":       3,
	"exciting":      3,
	"exhausted":     -2,
	"fabulous":      4,
	"fail":          -2,
	"failed":        -2,
	"failure":       -2,
	"fantastic":     4,
	"fear":          -2,
	"fine":          2,
	"focused":       2,
	"fresh":         1,
	"friendly":      2,
	"frustrated":    -2,
	"frustrating":   -2,
	"fun":           4,
	"funny":         4,
	"furious":       -3,
	"glad":          3,
	"gloomy":        -1,
	"good":          3,
	"grateful":      3,
	"great":         3,
	"grief":         -2,
	"guilt":         -3,
	"guilty":        -3,
	"happiness":     3,
	"happy":         3,
	"hate":          -3,
	"hated":         -3,
	"heartbroken":   -3,
	"heaven":        2,
	"hell":          -4,
	"helpless":      -2,
	"hope":          2,
	"hopeful":       2,
	"hopeless":      -2,
	"horrible":      -3,
	"hurt":          -2,
	"ill":           -2,
	"improve":       2,
	"improved":      2,
	"incredible":    4,
	"inspired":      2,
	"interesting":   2,
	"irritated":     -3,
	"jealous":       -2,
	"joy":           3,
	"joyful":        3,
	"kind":          2,
	"laugh":         1,
	"laughed":       1,
	"laughing":      1,
	"lazy":          -1,
	"lonely":        -2,
	"lost":          -3,
	"love":          3,
	"loved":         3,
	"lovely":        3,
	"loving":        2,
	"lucky":         3,
	"mad":           -3,
	"marvelous":     3,
	"mess":          -2,
	"miserable":     -3,
	"miss":          -2,
	"missed":        -2,
	"misunderstood": -2,
	"motivated":     2,
	"nervous":       -2,
	"nice":          3,
	"numb":          -1,
	"overwhelmed":   -2,
	"pain":          -2,
	"painful":       -2,
	"panic":         -3,
	"peace":         2,
	"peaceful":      2,
	"perfect":       3,
	"pleasant":      3,
	"pleased":       3,
	"positive":      2,
	"pretty":        1,
	"productive":    2,
	"proud":         2,
	"refreshed":     2,
	"regret":        -2,
	"regrets":       -2,
	"relaxed":       2,
	"relief":        1,
	"relieved":      2,
	"restless":      -2,
	"sad":           -2,
	"sadness":       -2,
	"satisfied":     2,
	"scared":        -2,
	"scary":         -2,
	"sick":          -2,
	"smile":         2,
	"smiled":        2,
	"sorrow":        -2,
	"sorry":         -1,
	"special":       2,
	"strength":      2,
	"stress":        -1,
	"stressed":      -2,
	"stressful":     -2,
	"strong":        2,
	"struggle":      -2,
	"struggling":    -2,
	"stuck":         -2,
	"stupid":        -2,
	"suffer":        -2,
	"suffering":     -2,
	"super":         3,
	"sweet":         2,
	"terrible":      -3,
	"terrific":      4,
	"thankful":      2,
	"thanks":        2,
	"tired":         -2,
	"tough":         -2,
	"tragic":        -2,
	"trouble":       -2,
	"ugly":          -3,
	"unhappy":       -2,
	"upset":         -2,
	"useless":       -2,
	"warm":          1,
	"weak":          -2,
	"welcome":       2,
	"win":           4,
	"winner":        4,
	"won":           3,
	"wonderful":     4,
	"worn":          -1,
	"worried":       -3,
	"worry":         -3,
	"worse":         -3,
	"worst":         -3,
	"worthless":     -2,
	"worthy":        2,
	"wow":           4,
	"wrong":         -2,
}

// negators flip the valence of the token that immediately follows them.
var negators = map[string]bool{
	"ain't":     true,
	"aren't":    true,
	"can't":     true,
	"cannot":    true,
	"couldn't":  true,
	"didn't":    true,
	"doesn't":   true,
	"don't":     true,
	"isn't":     true,
	"neither":   true,
	"never":     true,
	"no":        true,
	"nobody":    true,
	"none":      true,
	"nor":       true,
	"not":       true,
	"nothing":   true,
	"nowhere":   true,
	"shouldn't": true,
	"wasn't":    true,
	"weren't":   true,
	"won't":     true,
	"wouldn't":  true,
}
