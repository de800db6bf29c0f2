package suggest

import "github.com/minxiang0101/markdown/trigger"

type emojiEntry struct {
	code     string
	glyph    string
	desc     string
	keywords []string
}

// emojiTable is the fixed emoji catalog, in display order. Codes are unique;
// the filter matches against code, description, and keywords.
var emojiTable = []emojiEntry{
	{code: "smile", glyph: "😄", desc: "smiling face", keywords: []string{"happy", "joy", "grin"}},
	{code: "grin", glyph: "😁", desc: "beaming face", keywords: []string{"happy", "smile"}},
	{code: "joy", glyph: "😂", desc: "tears of joy", keywords: []string{"laugh", "funny", "lol"}},
	{code: "rofl", glyph: "🤣", desc: "rolling on the floor laughing", keywords: []string{"laugh", "lol"}},
	{code: "wink", glyph: "😉", desc: "winking face", keywords: []string{"flirt"}},
	{code: "blush", glyph: "😊", desc: "smiling face with smiling eyes", keywords: []string{"shy", "happy"}},
	{code: "heart_eyes", glyph: "😍", desc: "smiling face with heart eyes", keywords: []string{"love", "crush"}},
	{code: "thinking", glyph: "🤔", desc: "thinking face", keywords: []string{"hmm", "consider"}},
	{code: "neutral", glyph: "😐", desc: "neutral face", keywords: []string{"meh"}},
	{code: "smirk", glyph: "😏", desc: "smirking face", keywords: []string{"smug"}},
	{code: "relieved", glyph: "😌", desc: "relieved face", keywords: []string{"calm"}},
	{code: "sleepy", glyph: "😪", desc: "sleepy face", keywords: []string{"tired"}},
	{code: "sleeping", glyph: "😴", desc: "sleeping face", keywords: []string{"zzz", "tired"}},
	{code: "mask", glyph: "😷", desc: "face with medical mask", keywords: []string{"sick", "ill"}},
	{code: "sunglasses", glyph: "😎", desc: "smiling face with sunglasses", keywords: []string{"cool"}},
	{code: "confused", glyph: "😕", desc: "confused face", keywords: []string{"puzzled"}},
	{code: "worried", glyph: "😟", desc: "worried face", keywords: []string{"concern"}},
	{code: "frown", glyph: "🙁", desc: "slightly frowning face", keywords: []string{"sad"}},
	{code: "cry", glyph: "😢", desc: "crying face", keywords: []string{"sad", "tear"}},
	{code: "sob", glyph: "😭", desc: "loudly crying face", keywords: []string{"sad", "bawl"}},
	{code: "angry", glyph: "😠", desc: "angry face", keywords: []string{"mad"}},
	{code: "rage", glyph: "😡", desc: "pouting face", keywords: []string{"mad", "furious"}},
	{code: "scream", glyph: "😱", desc: "face screaming in fear", keywords: []string{"shock", "horror"}},
	{code: "flushed", glyph: "😳", desc: "flushed face", keywords: []string{"embarrassed"}},
	{code: "dizzy_face", glyph: "😵", desc: "dizzy face", keywords: []string{"spent"}},
	{code: "zany", glyph: "🤪", desc: "zany face", keywords: []string{"goofy", "crazy"}},
	{code: "shush", glyph: "🤫", desc: "shushing face", keywords: []string{"quiet", "secret"}},
	{code: "hug", glyph: "🤗", desc: "hugging face", keywords: []string{"embrace"}},
	{code: "nerd", glyph: "🤓", desc: "nerd face", keywords: []string{"geek", "glasses"}},
	{code: "robot", glyph: "🤖", desc: "robot", keywords: []string{"bot", "machine"}},
	{code: "ghost", glyph: "👻", desc: "ghost", keywords: []string{"boo", "halloween"}},
	{code: "alien", glyph: "👽", desc: "alien", keywords: []string{"ufo", "space"}},
	{code: "skull", glyph: "💀", desc: "skull", keywords: []string{"dead", "danger"}},
	{code: "poop", glyph: "💩", desc: "pile of poo", keywords: []string{"crap"}},
	{code: "clown", glyph: "🤡", desc: "clown face", keywords: []string{"circus"}},
	{code: "wave", glyph: "👋", desc: "waving hand", keywords: []string{"hello", "goodbye", "hi"}},
	{code: "thumbsup", glyph: "👍", desc: "thumbs up", keywords: []string{"+1", "like", "approve", "yes"}},
	{code: "thumbsdown", glyph: "👎", desc: "thumbs down", keywords: []string{"-1", "dislike", "no"}},
	{code: "ok_hand", glyph: "👌", desc: "OK hand", keywords: []string{"perfect"}},
	{code: "clap", glyph: "👏", desc: "clapping hands", keywords: []string{"applause", "bravo"}},
	{code: "pray", glyph: "🙏", desc: "folded hands", keywords: []string{"thanks", "please", "hope"}},
	{code: "muscle", glyph: "💪", desc: "flexed biceps", keywords: []string{"strong", "gym"}},
	{code: "point_right", glyph: "👉", desc: "index pointing right", keywords: []string{"direction"}},
	{code: "point_left", glyph: "👈", desc: "index pointing left", keywords: []string{"direction"}},
	{code: "raised_hands", glyph: "🙌", desc: "raising hands", keywords: []string{"celebrate", "hooray"}},
	{code: "handshake", glyph: "🤝", desc: "handshake", keywords: []string{"deal", "agreement"}},
	{code: "v", glyph: "✌️", desc: "victory hand", keywords: []string{"peace"}},
	{code: "crossed_fingers", glyph: "🤞", desc: "crossed fingers", keywords: []string{"luck", "hope"}},
	{code: "writing_hand", glyph: "✍️", desc: "writing hand", keywords: []string{"write", "note"}},
	{code: "eyes", glyph: "👀", desc: "eyes", keywords: []string{"look", "watch"}},
	{code: "brain", glyph: "🧠", desc: "brain", keywords: []string{"smart", "mind"}},
	{code: "heart", glyph: "❤️", desc: "red heart", keywords: []string{"love"}},
	{code: "broken_heart", glyph: "💔", desc: "broken heart", keywords: []string{"sad", "breakup"}},
	{code: "sparkling_heart", glyph: "💖", desc: "sparkling heart", keywords: []string{"love"}},
	{code: "fire", glyph: "🔥", desc: "fire", keywords: []string{"hot", "flame", "lit"}},
	{code: "star", glyph: "⭐", desc: "star", keywords: []string{"favorite"}},
	{code: "star2", glyph: "🌟", desc: "glowing star", keywords: []string{"shine"}},
	{code: "sparkles", glyph: "✨", desc: "sparkles", keywords: []string{"shiny", "magic", "new"}},
	{code: "zap", glyph: "⚡", desc: "high voltage", keywords: []string{"lightning", "fast"}},
	{code: "boom", glyph: "💥", desc: "collision", keywords: []string{"explosion", "bang"}},
	{code: "dizzy", glyph: "💫", desc: "dizzy", keywords: []string{"star", "swirl"}},
	{code: "100", glyph: "💯", desc: "hundred points", keywords: []string{"perfect", "score"}},
	{code: "tada", glyph: "🎉", desc: "party popper", keywords: []string{"celebrate", "party", "congrats"}},
	{code: "confetti", glyph: "🎊", desc: "confetti ball", keywords: []string{"celebrate", "party"}},
	{code: "balloon", glyph: "🎈", desc: "balloon", keywords: []string{"party", "birthday"}},
	{code: "gift", glyph: "🎁", desc: "wrapped gift", keywords: []string{"present", "birthday"}},
	{code: "trophy", glyph: "🏆", desc: "trophy", keywords: []string{"win", "award", "champion"}},
	{code: "medal", glyph: "🏅", desc: "sports medal", keywords: []string{"win", "award"}},
	{code: "crown", glyph: "👑", desc: "crown", keywords: []string{"king", "queen", "royal"}},
	{code: "gem", glyph: "💎", desc: "gem stone", keywords: []string{"diamond", "jewel"}},
	{code: "rocket", glyph: "🚀", desc: "rocket", keywords: []string{"launch", "ship", "space", "fast"}},
	{code: "airplane", glyph: "✈️", desc: "airplane", keywords: []string{"flight", "travel"}},
	{code: "car", glyph: "🚗", desc: "automobile", keywords: []string{"drive", "vehicle"}},
	{code: "bike", glyph: "🚲", desc: "bicycle", keywords: []string{"cycle", "ride"}},
	{code: "train", glyph: "🚆", desc: "train", keywords: []string{"rail", "travel"}},
	{code: "ship", glyph: "🚢", desc: "ship", keywords: []string{"boat", "sea"}},
	{code: "anchor", glyph: "⚓", desc: "anchor", keywords: []string{"ship", "harbor"}},
	{code: "earth", glyph: "🌍", desc: "globe showing Europe-Africa", keywords: []string{"world", "planet"}},
	{code: "moon", glyph: "🌙", desc: "crescent moon", keywords: []string{"night"}},
	{code: "sun", glyph: "☀️", desc: "sun", keywords: []string{"sunny", "weather"}},
	{code: "cloud", glyph: "☁️", desc: "cloud", keywords: []string{"weather"}},
	{code: "rain", glyph: "🌧️", desc: "cloud with rain", keywords: []string{"weather", "wet"}},
	{code: "snowflake", glyph: "❄️", desc: "snowflake", keywords: []string{"cold", "winter"}},
	{code: "rainbow", glyph: "🌈", desc: "rainbow", keywords: []string{"pride", "weather"}},
	{code: "umbrella", glyph: "☂️", desc: "umbrella", keywords: []string{"rain"}},
	{code: "seedling", glyph: "🌱", desc: "seedling", keywords: []string{"plant", "grow"}},
	{code: "tree", glyph: "🌳", desc: "deciduous tree", keywords: []string{"nature", "forest"}},
	{code: "four_leaf_clover", glyph: "🍀", desc: "four leaf clover", keywords: []string{"luck"}},
	{code: "rose", glyph: "🌹", desc: "rose", keywords: []string{"flower", "love"}},
	{code: "cherry_blossom", glyph: "🌸", desc: "cherry blossom", keywords: []string{"flower", "spring"}},
	{code: "dog", glyph: "🐶", desc: "dog face", keywords: []string{"puppy", "pet"}},
	{code: "cat", glyph: "🐱", desc: "cat face", keywords: []string{"kitten", "pet"}},
	{code: "mouse", glyph: "🐭", desc: "mouse face", keywords: []string{"rodent"}},
	{code: "rabbit", glyph: "🐰", desc: "rabbit face", keywords: []string{"bunny"}},
	{code: "bear", glyph: "🐻", desc: "bear face", keywords: []string{"animal"}},
	{code: "panda", glyph: "🐼", desc: "panda face", keywords: []string{"animal"}},
	{code: "fox", glyph: "🦊", desc: "fox face", keywords: []string{"animal"}},
	{code: "owl", glyph: "🦉", desc: "owl", keywords: []string{"bird", "wise"}},
	{code: "penguin", glyph: "🐧", desc: "penguin", keywords: []string{"bird", "linux"}},
	{code: "butterfly", glyph: "🦋", desc: "butterfly", keywords: []string{"insect"}},
	{code: "bee", glyph: "🐝", desc: "honeybee", keywords: []string{"insect", "buzz"}},
	{code: "bug", glyph: "🐛", desc: "bug", keywords: []string{"insect", "error"}},
	{code: "turtle", glyph: "🐢", desc: "turtle", keywords: []string{"slow"}},
	{code: "whale", glyph: "🐳", desc: "spouting whale", keywords: []string{"sea", "docker"}},
	{code: "unicorn", glyph: "🦄", desc: "unicorn", keywords: []string{"magic"}},
	{code: "dragon", glyph: "🐉", desc: "dragon", keywords: []string{"myth"}},
	{code: "pizza", glyph: "🍕", desc: "pizza", keywords: []string{"food", "slice"}},
	{code: "burger", glyph: "🍔", desc: "hamburger", keywords: []string{"food"}},
	{code: "sushi", glyph: "🍣", desc: "sushi", keywords: []string{"food", "japan"}},
	{code: "ramen", glyph: "🍜", desc: "steaming bowl", keywords: []string{"food", "noodle"}},
	{code: "cake", glyph: "🎂", desc: "birthday cake", keywords: []string{"food", "birthday"}},
	{code: "cookie", glyph: "🍪", desc: "cookie", keywords: []string{"food", "snack"}},
	{code: "apple", glyph: "🍎", desc: "red apple", keywords: []string{"fruit", "food"}},
	{code: "banana", glyph: "🍌", desc: "banana", keywords: []string{"fruit", "food"}},
	{code: "avocado", glyph: "🥑", desc: "avocado", keywords: []string{"fruit", "food"}},
	{code: "coffee", glyph: "☕", desc: "hot beverage", keywords: []string{"drink", "cafe"}},
	{code: "tea", glyph: "🍵", desc: "teacup without handle", keywords: []string{"drink", "green"}},
	{code: "beer", glyph: "🍺", desc: "beer mug", keywords: []string{"drink", "cheers"}},
	{code: "wine", glyph: "🍷", desc: "wine glass", keywords: []string{"drink"}},
	{code: "champagne", glyph: "🍾", desc: "bottle with popping cork", keywords: []string{"drink", "celebrate"}},
	{code: "check", glyph: "✅", desc: "check mark button", keywords: []string{"done", "yes", "ok"}},
	{code: "x", glyph: "❌", desc: "cross mark", keywords: []string{"no", "wrong", "fail"}},
	{code: "warning", glyph: "⚠️", desc: "warning", keywords: []string{"caution", "alert"}},
	{code: "question", glyph: "❓", desc: "question mark", keywords: []string{"ask", "help"}},
	{code: "exclamation", glyph: "❗", desc: "exclamation mark", keywords: []string{"important"}},
	{code: "bulb", glyph: "💡", desc: "light bulb", keywords: []string{"idea", "tip"}},
	{code: "book", glyph: "📖", desc: "open book", keywords: []string{"read", "docs"}},
	{code: "books", glyph: "📚", desc: "books", keywords: []string{"library", "study"}},
	{code: "memo", glyph: "📝", desc: "memo", keywords: []string{"note", "write", "pencil"}},
	{code: "pushpin", glyph: "📌", desc: "pushpin", keywords: []string{"pin", "location"}},
	{code: "paperclip", glyph: "📎", desc: "paperclip", keywords: []string{"attach"}},
	{code: "calendar", glyph: "📅", desc: "calendar", keywords: []string{"date", "schedule"}},
	{code: "clock", glyph: "⏰", desc: "alarm clock", keywords: []string{"time", "wake"}},
	{code: "hourglass", glyph: "⌛", desc: "hourglass done", keywords: []string{"time", "wait"}},
	{code: "mag", glyph: "🔍", desc: "magnifying glass tilted left", keywords: []string{"search", "find"}},
	{code: "lock", glyph: "🔒", desc: "locked", keywords: []string{"secure", "private"}},
	{code: "key", glyph: "🔑", desc: "key", keywords: []string{"unlock", "password"}},
	{code: "hammer", glyph: "🔨", desc: "hammer", keywords: []string{"tool", "build"}},
	{code: "wrench", glyph: "🔧", desc: "wrench", keywords: []string{"tool", "fix"}},
	{code: "gear", glyph: "⚙️", desc: "gear", keywords: []string{"settings", "config"}},
	{code: "link", glyph: "🔗", desc: "link", keywords: []string{"url", "chain"}},
	{code: "bell", glyph: "🔔", desc: "bell", keywords: []string{"notification", "ring"}},
	{code: "mega", glyph: "📣", desc: "megaphone", keywords: []string{"announce", "shout"}},
	{code: "envelope", glyph: "✉️", desc: "envelope", keywords: []string{"mail", "email", "letter"}},
	{code: "package", glyph: "📦", desc: "package", keywords: []string{"box", "ship", "release"}},
	{code: "folder", glyph: "📁", desc: "file folder", keywords: []string{"directory"}},
	{code: "chart", glyph: "📈", desc: "chart increasing", keywords: []string{"graph", "growth", "up"}},
	{code: "chart_down", glyph: "📉", desc: "chart decreasing", keywords: []string{"graph", "down"}},
	{code: "computer", glyph: "💻", desc: "laptop", keywords: []string{"pc", "code", "work"}},
	{code: "keyboard", glyph: "⌨️", desc: "keyboard", keywords: []string{"type", "input"}},
	{code: "phone", glyph: "📱", desc: "mobile phone", keywords: []string{"smartphone", "call"}},
	{code: "camera", glyph: "📷", desc: "camera", keywords: []string{"photo", "picture"}},
	{code: "movie", glyph: "🎬", desc: "clapper board", keywords: []string{"film", "video"}},
	{code: "music", glyph: "🎵", desc: "musical note", keywords: []string{"song", "sound"}},
	{code: "art", glyph: "🎨", desc: "artist palette", keywords: []string{"paint", "design"}},
	{code: "game", glyph: "🎮", desc: "video game", keywords: []string{"controller", "play"}},
	{code: "dart", glyph: "🎯", desc: "bullseye", keywords: []string{"target", "goal"}},
	{code: "soccer", glyph: "⚽", desc: "soccer ball", keywords: []string{"football", "sport"}},
	{code: "basketball", glyph: "🏀", desc: "basketball", keywords: []string{"sport", "hoop"}},
	{code: "money", glyph: "💰", desc: "money bag", keywords: []string{"cash", "rich"}},
	{code: "bank", glyph: "🏦", desc: "bank", keywords: []string{"money", "building"}},
	{code: "house", glyph: "🏠", desc: "house", keywords: []string{"home", "building"}},
	{code: "office", glyph: "🏢", desc: "office building", keywords: []string{"work", "building"}},
	{code: "construction", glyph: "🚧", desc: "construction", keywords: []string{"wip", "barrier"}},
	{code: "bomb", glyph: "💣", desc: "bomb", keywords: []string{"explode", "danger"}},
	{code: "shield", glyph: "🛡️", desc: "shield", keywords: []string{"protect", "security"}},
	{code: "flag", glyph: "🚩", desc: "triangular flag", keywords: []string{"milestone", "red"}},
	{code: "recycle", glyph: "♻️", desc: "recycling symbol", keywords: []string{"green", "reuse"}},
	{code: "infinity", glyph: "♾️", desc: "infinity", keywords: []string{"forever", "loop"}},
	{code: "zzz", glyph: "💤", desc: "zzz", keywords: []string{"sleep", "tired"}},
	{code: "wavehand", glyph: "🫡", desc: "saluting face", keywords: []string{"salute", "respect"}},
	{code: "eyes_roll", glyph: "🙄", desc: "face with rolling eyes", keywords: []string{"whatever"}},
	{code: "party_face", glyph: "🥳", desc: "partying face", keywords: []string{"celebrate", "birthday"}},
	{code: "melting", glyph: "🫠", desc: "melting face", keywords: []string{"hot", "embarrassed"}},
	{code: "salute_hand", glyph: "🖖", desc: "vulcan salute", keywords: []string{"spock", "prosper"}},
}

func emojiCandidates(query string) []Candidate {
	out := make([]Candidate, 0, 16)
	for _, e := range emojiTable {
		fields := make([]string, 0, 2+len(e.keywords))
		fields = append(fields, e.code, e.desc)
		fields = append(fields, e.keywords...)
		if !matchesQuery(query, fields...) {
			continue
		}
		out = append(out, Candidate{
			ID:          "emoji-" + e.code,
			Label:       e.glyph + "  :" + e.code + ":",
			InsertText:  e.glyph,
			Description: e.desc,
			Kind:        trigger.KindEmoji,
		})
	}
	return out
}
