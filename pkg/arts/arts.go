// Package arts holds the ASCII art payloads the bot replies with. The art is
// data, not logic; handlers pick from here so the string literals stay out of
// the command code.
package arts

import "math/rand"

// InitialMessageArt is the large placeholder sent while a slow request is in
// flight. Sending it can trip the transport rate limit, in which case
// handlers fall back to SimpleInitialMessage.
const InitialMessageArt = `
⠀⠀⠀⠀⠀⣠⣤⣤⣤⣀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⢀⣠⣤⣤⣄⡀⠀⠀⠀⠀
⠀⠀⠀⢀⣾⡟⠉⠀⠙⠻⣷⣦⡀⠀⠀⠀⠀⠀⣠⣶⠿⠋⠁⠈⠻⣿⡄⠀⠀⠀
⠀⠀⢠⣿⠏⠀⠀⠀⠀⠀⣈⣻⣿⣴⣶⣶⣦⣾⣟⣁⠀⠀⠀⠀⠀⠘⣿⡆⠀⠀
⠀⢀⣾⡏⠀⠀⣠⣴⠾⠟⠋⠉⠁⠀⠀⠀⠀⠈⠉⠙⠻⢳⣦⣄⡀⠀⠸⣿⡄⠀
⠀⢸⡿⢀⣴⠟⠋⠁⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠈⠙⠻⣦⡀⢻⣧⠀
⠀⣿⣷⣿⣅⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⢈⣿⣮⣿⡄
⢀⣿⣿⡏⢻⣦⠀⠀⠀⣀⠀⠀⠀⡀⠀⠀⢀⡀⠀⠀⣀⠀⠀⠀⢠⣾⢻⣿⣿⡇
⣸⡿⠸⣡⠀⠹⣧⡀⠀⣿⣷⣠⡾⢻⣦⣴⠟⣷⣤⡾⣿⠀⠀⣰⡿⠁⢸⡿⢻⣧
⣿⠇⠀⠙⠷⠶⠟⠃⠀⣿⠈⠛⠀⠀⠙⠋⠀⠈⠛⠁⣿⠀⠀⠛⠷⠶⠟⠁⠘⣧
⣿⠀⠀⠀⠀⠀⠀⠀⠀⣿⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⣿⠀⠀⠀⠀⠀⠀⠀⠀⣿
⢿⣇⠀⠀⠀⠀⠀⠀⠀⣿⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⣿⠀⠀⠀⠀⠀⠀⠀⢰⣏
⠘⣿⣄⠀⠀⠀⠀⠀⠀⣿⣴⣷⣄⢠⣾⣷⡀⣴⣷⣄⣿⠀⠀⠀⠀⠀⠀⢠⣿⠇
⠀⠘⢿⣦⣀⠀⠀⠀⠀⠿⠋⠀⠙⠟⠁⠈⠻⠏⠀⠙⠿⠀⠀⠀⠀⣀⣴⡿⠋⠀
⠀⠀⠀⠉⠻⢿⣶⣤⣄⣀⣀⠀⠀⠀⠀⠀⠀⠀⠀⣀⣀⣠⣤⣶⡾⠟⠋⠀⠀⠀
⠀⠀⠀⠀⠀⠀⠈⠉⠉⠛⠛⠛⠛⠛⠛⠛⠛⠛⠛⠛⠛⠋⠉⠁⠀⠀⠀⠀⠀⠀`

// SimpleInitialMessage replaces the art placeholder when rate limits bite.
const SimpleInitialMessage = "Thinking..."

// ThinkingFrames are the animation frames cycled onto the placeholder
// message while a long-running provider call is in flight.
var ThinkingFrames = []string{
	"Thinking.",
	"Thinking..",
	"Thinking...",
	"Thinking....",
}

var dogArts = []string{
	`
⠀⠀⠀⠀⠀⠀⢀⣀⣀⣀⣀⣀⣀⣀⡀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀
⠀⠀⢀⡤⠞⠋⠉⠀⠀⠀⠀⠀⠀⠀⠉⠙⠳⢄⡀⠀⠀⠀⠀⠀⠀⠀⠀⠀
⠀⣠⠋⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠱⡆⠀⠀⠀⠀⠀⠀⠀⠀
⢠⠇⠀⢰⠆⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠰⡄⠀⢸⡀⠀⠀⠀⠀⠀⠀⠀    Sit, Stay,'N Play
⢸⠀⠀⢸⠀⠀⢰⣶⡀⠀⠀⠀⢠⣶⡀⠀⠀⡇⠀⢸⠂⠀⠀⠀⠀⠀⠀⠀
⠈⢧⣀⢸⡄⠀⠀⠉⠀⠀⠀⠀⠀⠉⠀⠀⢠⡇⣠⡞⠁⠀⠀⠀⠀⠀⠀⠀
⠀⠀⠉⠙⣇⠀⠂⠀⠀⢶⣶⣶⠀⠄⠀⠀⣾⠉⠁⠀⠀⠀⠀⠀⠀⠀⠀⠀
⠀⠀⠀⠀⠘⢦⡀⠀⠀⠀⠀⠀⠀⠀⢀⣼⡁⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀
⠀⠀⠀⠀⢠⠞⠓⠤⣤⣀⣀⣠⣤⠴⠚⠉⠑⠲⢤⡀⠀⠀⠀⠀⠀⠀⠀⠀
⠀⠀⠀⠀⢸⠀⠀⣀⣠⣀⣀⣠⣀⡀⠀⠀⠀⠀⠀⠈⠳⣄⠀⠀⠀⠀⠀⠀
⠀⠀⠀⠀⢸⠀⠰⡇⠀⠈⠁⠀⠈⡧⠀⠀⠀⠀⠀⠀⠀⠈⢦⠀⠀⢠⠖⡆
⠀⠀⠀⠀⢸⠀⠀⠑⢦⡀⠀⣠⠞⠁⠀⢸⠀⠀⠀⠀⠀⠀⠈⣷⠞⠋⢠⠇
⠀⠀⠀⠀⢸⠀⠀⠀⠀⠙⡞⠁⠀⠀⠀⢸⠀⠀⠀⠀⠀⠀⠀⢹⢀⡴⠋⠀
⠀⠀⠀⠀⢸⠀⠀⠀⠀⠀⡇⠀⠀⠀⠀⢸⠀⠀⠀⠀⠀⠀⠀⡞⠉⠀⠀⠀
⠀⠀⠀⠀⢸⡀⠀⠀⠀⢠⣧⠀⠀⠀⠀⣸⡀⠀⠀⠀⠀⣠⠞⠁⠀⠀⠀⠀
⠀⠀⠀⠀⠈⠳⠦⠤⠴⠛⠈⠓⠤⠤⠞⠁⠉⠛⠒⠚⠋⠁⠀⠀⠀⠀⠀⠀`,
	`
⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⢀⡀⠀⠀⠀⠀
⠀⠀⠀⠀⢀⡴⣆⠀⠀⠀⠀⠀⣠⡀ ᶻ 𝗓 𐰁 .ᐟ ⣼⣿⡗⠀⠀⠀⠀
⠀⠀⠀⣠⠟⠀⠘⠷⠶⠶⠶⠾⠉⢳⡄⠀⠀⠀⠀⠀⣧⣿⠀⠀⠀⠀⠀
⠀⠀⣰⠃⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⢻⣤⣤⣤⣤⣤⣿⢿⣄⠀⠀⠀⠀
⠀⠀⡇⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⣧⠀⠀⠀⠀⠀⠀⠙⣷⡴⠶⣦
⠀⠀⢱⡀⠀⠉⠉⠀⠀⠀⠀⠛⠃⠀⢠⡟⠀⠀⠀⢀⣀⣠⣤⠿⠞⠛⠋
⣠⠾⠋⠙⣶⣤⣤⣤⣤⣤⣀⣠⣤⣾⣿⠴⠶⠚⠋⠉⠁⠀⠀⠀⠀⠀⠀
⠛⠒⠛⠉⠉⠀⠀⠀⣴⠟⢃⡴⠛⠋⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀`,
	`
                             ＿＿
　　　　　🌸＞　　フ
　　　　　| 　_　 _ l
　 　　　／` + "`" + ` ミ＿xノ
　　 　 /　　　 　 |
　　　 /　 ヽ　　 ﾉ
　 　 │　　|　|　|
　／￣|　　 |　|　|
　| (￣ヽ＿_ヽ_)__)
　＼二つ`,
}

// RandomDogArt picks one of the dog arts.
func RandomDogArt() string {
	return dogArts[rand.Intn(len(dogArts))]
}

// DogArtCount reports how many arts are available.
func DogArtCount() int {
	return len(dogArts)
}
