package stagekit

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
stage:
  width: 800
  height: 600
  origin: top-left
layers:
  - layerId: backdrop
    imagePath: img/backdrop.png
    scale: 2
    opacity: 0.9
  - layerId: gear
    registryKey: gear
    scale: {x: 1.5, y: 0.75}
    behaviors:
      spin:
        enabled: true
        rpm: 30
        direction: ccw
    events:
      onPress:
        - action: pulse
          set:
            enabled: true
            amplitude: 0.2
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stage == nil || cfg.Stage.Width != 800 || cfg.Stage.Origin != "top-left" {
		t.Errorf("stage = %+v", cfg.Stage)
	}
	if len(cfg.Layers) != 2 {
		t.Fatalf("layers = %d", len(cfg.Layers))
	}

	backdrop := cfg.Layers[0]
	if backdrop.ImagePath != "img/backdrop.png" {
		t.Errorf("imagePath = %q", backdrop.ImagePath)
	}
	// Scalar scale decodes as uniform.
	if backdrop.Scale == nil || backdrop.Scale.X != 2 || backdrop.Scale.Y != 2 {
		t.Errorf("scale = %+v", backdrop.Scale)
	}

	gear := cfg.Layers[1]
	if gear.Scale == nil || gear.Scale.X != 1.5 || gear.Scale.Y != 0.75 {
		t.Errorf("scale = %+v", gear.Scale)
	}
	if gear.Behaviors == nil || gear.Behaviors.Spin == nil || *gear.Behaviors.Spin.RPM != 30 {
		t.Errorf("behaviors = %+v", gear.Behaviors)
	}
	if gear.Events == nil || gear.Events.OnPress == nil {
		t.Fatal("events not decoded")
	}
}

func TestParseConfigValidatesEndToEnd(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	res := Validate(cfg)
	if !res.OK {
		t.Fatalf("sample config should validate: %v", res.Errors)
	}

	gear := res.Normalized.Layers[1]
	if gear.Behaviors.Spin.Direction != DirectionCCW {
		t.Errorf("direction = %v", gear.Behaviors.Spin.Direction)
	}
	if len(gear.Events.OnPress) != 1 || gear.Events.OnPress[0].Kind() != BehaviorPulse {
		t.Errorf("onPress = %+v", gear.Events.OnPress)
	}
}

func TestParseConfigBadYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("layers: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseConfigBadScaleShape(t *testing.T) {
	if _, err := ParseConfig([]byte("layers:\n  - layerId: a\n    scale: [1, 2]\n")); err == nil {
		t.Fatal("expected error for sequence scale")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Layers) != 2 {
		t.Fatalf("layers = %d", len(cfg.Layers))
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}
