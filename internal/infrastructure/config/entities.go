package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig           `json:"player"`
	Enemies map[string]EnemyConfig `json:"enemies"`
	Coin    CoinConfig             `json:"coin"`
}

type PlayerConfig struct {
	ID    string      `json:"id"`
	Size  SizeConfig  `json:"size"`
	Stats PlayerStats `json:"stats"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PlayerStats struct {
	Lives int `json:"lives"`
}

type EnemyConfig struct {
	ID    string     `json:"id"`
	Size  SizeConfig `json:"size"`
	Color string     `json:"color"`
}

type CoinConfig struct {
	Size SizeConfig `json:"size"`
	// FloatAmplitude and FloatPeriod only drive the drawn offset
	FloatAmplitude float64 `json:"floatAmplitude"`
	FloatPeriod    float64 `json:"floatPeriod"`
}
