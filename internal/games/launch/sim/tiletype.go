package sim

import "strings"

// TileType is the closed set of tile kinds.
type TileType int

const (
	TileNormal TileType = iota
	TileHard
	TileSolid
	TilePoints
	TileLife
	TileKill
	TileGoal
	TileBounce
	TileSpring
	TileExploding
)

// Texture keys used by renderers.
const (
	TextureBrick          = "brick"
	TextureSolidBlock     = "solid_block"
	TextureSpring         = "spring"
	TextureExplodingBlock = "exploding_block"
	TextureRewardBlock    = "reward_block"
	TextureDeathBlock     = "death_block"
)

// TileInfo is the immutable descriptor of a tile type.
// Style is empty for types whose colour depends on the tile value.
type TileInfo struct {
	Name       string
	Style      string
	Texture    string
	ShowsValue bool
}

var tileInfos = [...]TileInfo{
	TileNormal:    {Name: "normal", Texture: TextureBrick},
	TileHard:      {Name: "hard", Style: "#8F30FF", Texture: TextureBrick, ShowsValue: true},
	TileSolid:     {Name: "solid", Style: "#3F3F3F", Texture: TextureSolidBlock},
	TilePoints:    {Name: "points", Style: "#0FEF6F", Texture: TextureRewardBlock, ShowsValue: true},
	TileLife:      {Name: "life", Style: "#FF90C0", Texture: TextureRewardBlock, ShowsValue: true},
	TileKill:      {Name: "kill", Style: "#AF2F00", Texture: TextureDeathBlock},
	TileGoal:      {Name: "goal", Style: "#B8D8F0", Texture: TextureRewardBlock},
	TileBounce:    {Name: "bounce", Style: "#F0DF60", Texture: TextureSpring, ShowsValue: true},
	TileSpring:    {Name: "spring", Style: "#20C0FF", Texture: TextureSpring, ShowsValue: true},
	TileExploding: {Name: "exploding", Style: "#F76027", Texture: TextureExplodingBlock, ShowsValue: true},
}

// Info returns the descriptor for t.
func (t TileType) Info() TileInfo {
	if t < 0 || int(t) >= len(tileInfos) {
		return TileInfo{Name: "unknown"}
	}
	return tileInfos[t]
}

func (t TileType) String() string {
	return t.Info().Name
}

// Bouncy tiles reflect the ball without damping or axis friction.
func (t TileType) Bouncy() bool {
	return t == TileBounce || t == TileSpring
}

// Rigid tiles always reflect, whatever the impact speed.
func (t TileType) Rigid() bool {
	return t == TileHard || t == TileSolid
}

// ParseTileType maps a tile type name to its TileType.
func ParseTileType(name string) (TileType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range tileInfos {
		if info.Name == name {
			return TileType(i), true
		}
	}
	return 0, false
}

// TileTypes lists every tile type in declaration order.
func TileTypes() []TileType {
	types := make([]TileType, len(tileInfos))
	for i := range tileInfos {
		types[i] = TileType(i)
	}
	return types
}
