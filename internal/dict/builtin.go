package dict

// builtinWords is the starter dictionary used until a word list file
// is installed. Short common words keep the first game playable; a few
// Q, X, Z and J words are included so rare discs are never dead weight.
var builtinWords = []string{
	"ace", "act", "add", "age", "ago", "aid", "aim", "air", "all", "and",
	"ant", "any", "ape", "arc", "are", "arm", "art", "ash", "ask", "ate",
	"able", "acid", "aged", "also", "area", "army", "away", "alone", "along",
	"among", "anger", "angle", "apple", "argue", "arise", "around", "answer",
	"bad", "bag", "ban", "bar", "bat", "bed", "bee", "beg", "bet", "big",
	"bit", "boa", "bow", "box", "boy", "bus", "but", "buy", "back", "ball",
	"band", "bank", "base", "bath", "bear", "beat", "been", "bell", "belt",
	"bend", "best", "bird", "blow", "blue", "boat", "body", "bone", "born",
	"both", "bowl", "burn", "busy", "beach", "begin", "being", "below",
	"bench", "birth", "black", "blame", "blind", "block", "blood", "board",
	"brain", "bread", "break", "bring", "broad", "brown", "build", "bright",
	"cab", "can", "cap", "car", "cat", "cow", "cry", "cup", "cut", "cake",
	"call", "calm", "came", "camp", "card", "care", "case", "cash", "cast",
	"cell", "cent", "chat", "chin", "chip", "city", "clay", "club", "coal",
	"coat", "code", "cold", "come", "cook", "cool", "cope", "copy", "core",
	"corn", "cost", "crew", "crop", "cable", "carry", "catch", "cause",
	"chain", "chair", "chart", "chase", "cheap", "check", "chest", "chief",
	"child", "claim", "class", "clean", "clear", "climb", "clock", "close",
	"cloud", "coach", "coast", "count", "court", "cover", "crash", "cream",
	"crime", "cross", "crowd", "crown", "change", "charge", "choice",
	"dam", "day", "den", "dew", "did", "die", "dig", "dim", "dip", "dog",
	"dot", "dry", "due", "dug", "dark", "data", "date", "dawn", "dead",
	"deal", "dear", "debt", "deep", "deer", "desk", "dial", "dirt", "dish",
	"does", "done", "door", "dose", "down", "draw", "drew", "drop", "drum",
	"dust", "duty", "dance", "death", "depth", "doubt", "dozen", "draft",
	"drama", "dream", "dress", "drink", "drive", "early", "earth",
	"ear", "eat", "egg", "ego", "end", "era", "eye", "each", "earn",
	"ease", "east", "easy", "echo", "edge", "else", "even", "ever", "evil",
	"exit", "eight", "elect", "empty", "enemy", "enjoy", "enter", "equal",
	"error", "event", "every", "exact", "exist", "extra", "enough",
	"fan", "far", "fat", "fee", "few", "fig", "fin", "fit", "fix", "fly",
	"fog", "for", "fox", "fun", "fur", "face", "fact", "fade", "fail",
	"fair", "fall", "fame", "farm", "fast", "fate", "fear", "feed", "feel",
	"fell", "felt", "file", "fill", "film", "find", "fine", "fire", "firm",
	"fish", "five", "flag", "flat", "flew", "flow", "folk", "food", "foot",
	"form", "fort", "four", "free", "from", "fuel", "full", "fund", "faith",
	"fault", "favor", "fence", "fever", "field", "fight", "final", "first",
	"fixed", "flash", "fleet", "floor", "flour", "focus", "force", "forth",
	"found", "frame", "fresh", "front", "fruit", "forest", "figure",
	"gap", "gas", "gem", "get", "got", "gum", "gun", "gut", "gym", "gain",
	"game", "gate", "gave", "gear", "gift", "girl", "give", "glad", "goal",
	"goat", "goes", "gold", "gone", "good", "grab", "gray", "grew", "grid",
	"grip", "grow", "gaze", "ghost", "giant", "given", "glass", "globe",
	"glory", "grace", "grade", "grain", "grand", "grant", "grass", "great",
	"green", "group", "guard", "guess", "guest", "guide", "ground",
	"had", "ham", "has", "hat", "hay", "hen", "her", "hid", "him", "hip",
	"his", "hit", "hot", "how", "hub", "hug", "hut", "hail", "hair",
	"half", "hall", "hand", "hang", "hard", "harm", "hate", "have", "head",
	"hear", "heat", "heel", "held", "hell", "help", "here", "hero", "hide",
	"high", "hill", "hint", "hire", "hold", "hole", "home", "hope", "horn",
	"host", "hour", "huge", "hung", "hunt", "hurt", "habit", "happy",
	"heart", "heavy", "hello", "hence", "honey", "honor", "horse", "hotel",
	"house", "human", "humor", "hundred",
	"ice", "ill", "ink", "inn", "ion", "its", "icon", "idea", "idle",
	"inch", "into", "iron", "item", "ideal", "image", "index", "inner",
	"input", "issue", "ivory", "island",
	"jab", "jam", "jar", "jaw", "jet", "jig", "job", "jog", "joy", "jug",
	"jail", "jazz", "jean", "join", "joke", "jump", "june", "jury", "just",
	"joint", "judge", "juice", "joiner",
	"keg", "key", "kid", "kin", "kit", "keen", "keep", "kept", "kick",
	"kind", "king", "kiss", "knee", "knew", "knit", "knob", "knot", "know",
	"knife", "knock", "known",
	"lab", "lap", "law", "lay", "leg", "let", "lid", "lie", "lip", "lit",
	"log", "lot", "low", "lace", "lack", "lady", "laid", "lake", "lamp",
	"land", "lane", "last", "late", "lawn", "lead", "leaf", "lean", "left",
	"lend", "lens", "less", "life", "lift", "like", "limb", "lime", "line",
	"link", "lion", "list", "live", "load", "loan", "lock", "long", "look",
	"loop", "lord", "lose", "loss", "lost", "loud", "love", "luck", "label",
	"labor", "large", "laugh", "layer", "learn", "least", "leave", "legal",
	"lemon", "level", "light", "limit", "local", "logic", "loose", "lower",
	"lucky", "lunch", "letter", "little",
	"mad", "man", "map", "mat", "may", "men", "met", "mix", "mob", "mop",
	"mud", "mug", "made", "mail", "main", "make", "male", "many", "mark",
	"mass", "mate", "math", "meal", "mean", "meat", "meet", "melt", "menu",
	"mere", "mild", "mile", "milk", "mill", "mind", "mine", "miss", "mode",
	"mood", "moon", "more", "most", "move", "much", "must", "magic",
	"major", "maker", "march", "match", "maybe", "mayor", "medal", "media",
	"metal", "meter", "might", "minor", "minute", "model", "money", "month",
	"moral", "motor", "mount", "mouse", "mouth", "music", "matter",
	"nap", "net", "new", "nod", "nor", "not", "now", "nun", "nut", "nail",
	"name", "navy", "near", "neat", "neck", "need", "nest", "news", "next",
	"nice", "nine", "node", "none", "noon", "nose", "note", "naked",
	"nerve", "never", "night", "noble", "noise", "north", "novel", "nurse",
	"nation", "nature",
	"oak", "odd", "off", "oil", "old", "one", "our", "out", "owl", "own",
	"oath", "obey", "once", "only", "onto", "open", "oral", "oven", "over",
	"occur", "ocean", "offer", "often", "order", "other", "ought", "ounce",
	"outer", "owner", "option", "orange",
	"pad", "pan", "pat", "paw", "pay", "pea", "pen", "pet", "pie", "pig",
	"pin", "pit", "pot", "pub", "put", "pace", "pack", "page", "paid",
	"pain", "pair", "pale", "palm", "park", "part", "pass", "past", "path",
	"peak", "pear", "peer", "pick", "pile", "pine", "pink", "pipe", "plan",
	"play", "plot", "plus", "poem", "poet", "pole", "poll", "pond", "pool",
	"poor", "port", "pose", "post", "pour", "pray", "prey", "pull", "pump",
	"pure", "push", "paint", "panel", "panic", "paper", "party", "pause",
	"peace", "pedal", "phase", "phone", "photo", "piano", "piece", "pilot",
	"pitch", "place", "plain", "plane", "plant", "plate", "point", "pound",
	"power", "press", "price", "pride", "prime", "print", "prior", "prize",
	"proof", "proud", "prove", "people", "pepper",
	"quay", "quit", "quiz", "quack", "queen", "query", "quest", "queue",
	"quick", "quiet", "quilt", "quite", "quote", "quota", "quart", "quartz",
	"rag", "ran", "rat", "raw", "ray", "red", "rib", "rid", "rim", "rip",
	"rob", "rod", "rot", "row", "rub", "rug", "run", "race", "rack",
	"rage", "rail", "rain", "rank", "rare", "rate", "read", "real", "rear",
	"rent", "rest", "rice", "rich", "ride", "ring", "rise", "risk", "road",
	"rock", "role", "roll", "roof", "room", "root", "rope", "rose", "rule",
	"rush", "radio", "raise", "ranch", "range", "rapid", "ratio", "reach",
	"ready", "realm", "rebel", "refer", "relax", "reply", "ridge", "right",
	"rigid", "river", "robot", "rough", "round", "route", "royal", "rural",
	"reason", "record",
	"sad", "sat", "saw", "say", "sea", "see", "set", "she", "shy", "sin",
	"sip", "sir", "sit", "six", "ski", "sky", "son", "sow", "spy", "sum",
	"sun", "safe", "said", "sail", "salt", "same", "sand", "save", "scan",
	"seal", "seat", "seed", "seek", "seem", "seen", "self", "sell", "send",
	"sent", "ship", "shoe", "shop", "shot", "show", "shut", "sick", "side",
	"sign", "silk", "sing", "site", "size", "skin", "slip", "slow", "snow",
	"soap", "sock", "soft", "soil", "sold", "sole", "some", "song", "soon",
	"sort", "soul", "soup", "spin", "spot", "star", "stay", "stem", "step",
	"stop", "such", "suit", "sure", "swim", "scale", "scene", "scope",
	"score", "sense", "serve", "seven", "shade", "shake", "shall", "shape",
	"share", "sharp", "sheep", "sheet", "shelf", "shell", "shift", "shine",
	"shirt", "shock", "shoot", "shore", "short", "shout", "sight", "since",
	"sixth", "skill", "sleep", "slide", "small", "smart", "smell", "smile",
	"smoke", "solid", "solve", "sound", "south", "space", "spare", "speak",
	"speed", "spell", "spend", "split", "sport", "staff", "stage", "stand",
	"start", "state", "steam", "steel", "stick", "still", "stock", "stone",
	"store", "storm", "story", "strip", "study", "style", "sugar", "sweet",
	"second", "silver",
	"tab", "tag", "tan", "tap", "tax", "tea", "ten", "the", "tie", "tin",
	"tip", "toe", "ton", "top", "toy", "try", "tub", "two", "tail", "take",
	"tale", "talk", "tall", "tank", "tape", "task", "team", "tear", "tell",
	"tend", "tent", "term", "test", "text", "than", "that", "them", "then",
	"they", "thin", "this", "thus", "tide", "tidy", "tile", "till", "time",
	"tiny", "tired", "told", "toll", "tone", "took", "tool", "torn", "tour",
	"town", "tree", "trim", "trip", "true", "tune", "turn", "twin", "type",
	"table", "taste", "teach", "tenth", "thank", "theme", "there", "these",
	"thick", "thing", "think", "third", "those", "three", "threw", "throw",
	"tight", "title", "today", "token", "total", "touch", "tough", "tower",
	"trace", "track", "trade", "trail", "train", "treat", "trend", "trial",
	"tribe", "trick", "truck", "trust", "truth", "twice", "theory",
	"ugly", "undo", "unit", "upon", "urge", "used", "user", "ultra",
	"uncle", "under", "union", "unite", "until", "upper", "upset", "urban",
	"usage", "usual", "unique",
	"van", "vat", "vet", "via", "vow", "vain", "vase", "vast", "verb",
	"very", "vest", "veto", "vice", "view", "vine", "visa", "void", "vote",
	"vague", "valid", "value", "valve", "verse", "video", "virus", "visit",
	"vital", "vivid", "vocal", "voice", "vowel",
	"wag", "war", "was", "wax", "way", "web", "wet", "who", "why", "win",
	"wit", "won", "wage", "wait", "wake", "walk", "wall", "want", "ward",
	"warm", "warn", "wash", "wave", "weak", "wear", "week", "well", "went",
	"were", "west", "what", "when", "wide", "wife", "wild", "will", "wind",
	"wine", "wing", "wipe", "wire", "wise", "wish", "with", "wood", "wool",
	"word", "wore", "work", "worn", "wrap", "waste", "watch", "water",
	"weigh", "wheat", "wheel", "where", "which", "while", "white", "whole",
	"whose", "woman", "women", "world", "worry", "worse", "worst", "worth",
	"would", "wound", "write", "wrong", "window", "winter",
	"yard", "yarn", "year", "yell", "yes", "yet", "you", "young", "your",
	"youth", "yield", "yellow",
	"zap", "zed", "zen", "zig", "zip", "zoo", "zeal", "zero", "zest",
	"zinc", "zone", "zoom",
	"axe", "exam", "oxen", "taxi", "mixed", "proxy", "sixty", "toxic",
}
