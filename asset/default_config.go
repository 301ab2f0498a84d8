package asset

// DefaultConfig is the built-in configuration, decoded before any user file is applied
// Keys absent from a user file keep these values
const DefaultConfig = `
# === Loop pacing ===
# Whole frame budget: tick, render, input poll and sleep share it
tick: 120ms

# === Playfield ===
# fraction: centered half of the terminal
# inset: full terminal minus a fixed margin
area_mode: fraction
inset: 4

# === Rules ===
direction: down
food_count: 1
reverse_guard: false

# 0 picks a time-based seed
seed: 0

sound: true

# === Look ===
theme:
  head: "#ffffff"
  body: "#00c000"
  tail: "#004000"
  wall: "#aa00aa"
  food: "#ffffff"
  head_glyph: ""
  food_glyph: "$"
  wall_glyph: " "
  # Half-width katakana, one picked per cell
  body_glyphs: "ｦｧｨｩｪｫｬｭｮｯｰｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄﾅﾆﾇﾈﾉﾊﾋﾌﾍﾎﾏﾐﾑﾒﾓﾔﾕﾖﾗﾘﾙﾚﾛﾜﾝ"
`
