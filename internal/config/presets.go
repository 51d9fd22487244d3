package config

var Presets = map[string]map[string]*Config{
	"compare": {
		"demo": {
			NumPoints: 20, BBoxSize: 100,
		},
		"sparse": {
			NumPoints: 12, BBoxSize: 400,
		},
		"dense": {
			NumPoints: 200, BBoxSize: 100,
		},
		"stress": {
			NumPoints: 5000, BBoxSize: 800,
		},
	},
	"replay": {
		"careful": {
			NumPoints: 15, BBoxSize: 100,
			Playback: PlaybackConfig{IntervalMS: 1200},
		},
		"demo": {
			NumPoints: 20, BBoxSize: 100,
			Playback: PlaybackConfig{IntervalMS: 500, AutoPlay: true},
		},
		"flash": {
			NumPoints: 40, BBoxSize: 100,
			Playback: PlaybackConfig{IntervalMS: 120, AutoPlay: true},
		},
	},
	"sweep": {
		"quick": {
			Sweep: SweepConfig{StartSize: 100, EndSize: 2000, StepSize: 500},
		},
		"standard": {
			Sweep: SweepConfig{StartSize: 100, EndSize: 10000, StepSize: 500},
		},
		"deep": {
			Sweep: SweepConfig{StartSize: 500, EndSize: 50000, StepSize: 2500},
		},
	},
}

func GetPreset(command, preset string) *Config {
	commandPresets, ok := Presets[command]
	if !ok {
		return nil
	}
	cfg, ok := commandPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(command string) []string {
	commandPresets, ok := Presets[command]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(commandPresets))
	for name := range commandPresets {
		names = append(names, name)
	}
	return names
}
