package spritecache

import (
	"errors"
	"testing"
)

func TestApplyDefineSpriteGrid(t *testing.T) {
	s := NewStage(StageConfig{Side: 8})
	if err := s.Apply(DefineSpriteCommand{ID: 1, Pixels: testGrid(s, 4)}); err != nil {
		t.Fatal(err)
	}
	if len(s.defs) != 1 {
		t.Error("define command did not reach the store")
	}
}

func TestApplyDefineSpriteInvalidGrid(t *testing.T) {
	s := NewStage(StageConfig{Side: 8})
	err := s.Apply(DefineSpriteCommand{ID: 1, Pixels: []int{1, 2, 3}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestApplyUpdateInstanceDefaults(t *testing.T) {
	s := NewStage(StageConfig{Side: 8})
	if err := s.DefineSprite(1, testGrid(s, 4)); err != nil {
		t.Fatal(err)
	}
	// No optional fields: numerics default to 0, visible defaults to true.
	if err := s.Apply(UpdateInstanceCommand{ID: 5, DefinitionID: 1}); err != nil {
		t.Fatal(err)
	}
	inst := s.instances[5]
	if inst == nil {
		t.Fatal("instance not stored")
	}
	if inst.X != 0 || inst.Y != 0 || inst.Rotation != 0 {
		t.Errorf("numeric defaults wrong: %+v", inst)
	}
	if !inst.Visible {
		t.Error("visible should default to true")
	}
}

func TestApplyUpdateInstanceExplicitFields(t *testing.T) {
	s := NewStage(StageConfig{Side: 8})
	if err := s.DefineSprite(1, testGrid(s, 4)); err != nil {
		t.Fatal(err)
	}
	x, rot, vis := 12.5, 180.0, false
	if err := s.Apply(UpdateInstanceCommand{ID: 5, DefinitionID: 1, X: &x, Rotation: &rot, Visible: &vis}); err != nil {
		t.Fatal(err)
	}
	inst := s.instances[5]
	if inst.X != 12.5 || inst.Rotation != 180 || inst.Visible {
		t.Errorf("explicit fields not applied: %+v", inst)
	}
}

func TestApplyDefineVirtual(t *testing.T) {
	s := NewStage(StageConfig{Side: 8})
	cmd := DefineVirtualSpriteCommand{ID: 2, Layout: Layout4x4, BaseSpriteIDs: make([]int, 16)}
	if err := s.Apply(cmd); err != nil {
		t.Fatal(err)
	}
	if len(s.comps) != 1 {
		t.Error("composition not stored")
	}
}

func TestApplyImageCommands(t *testing.T) {
	s := NewStage(StageConfig{Decoder: stubDecoder(8, 8, nil)})
	if err := s.Apply(LoadImageCommand{ID: 1, ImageData: []byte{1}, Filename: "a.png"}); err != nil {
		t.Fatal(err)
	}
	waitLoaded(t, s, 1)

	if err := s.Apply(ShowImageCommand{ID: 1, Position: Point{X: 3, Y: 4}, Scale: 2}); err != nil {
		t.Fatal(err)
	}
	obj := s.images[1]
	if !obj.Visible || obj.X != 3 || obj.Y != 4 || obj.Scale != 2 {
		t.Errorf("show command not applied: %+v", obj)
	}

	if err := s.Apply(RotateImageCommand{ID: 1, Rotation: Rotation{Z: 0.5}}); err != nil {
		t.Fatal(err)
	}
	if obj.Rotation != 0.5 {
		t.Error("rotate command not applied")
	}

	if err := s.Apply(HideImageCommand{ID: 1}); err != nil {
		t.Fatal(err)
	}
	if obj.Visible {
		t.Error("hide command not applied")
	}
}

func TestApplyClearTargets(t *testing.T) {
	s := NewStage(StageConfig{Side: 8, Decoder: stubDecoder(8, 8, nil)})
	if err := s.DefineSprite(1, testGrid(s, 4)); err != nil {
		t.Fatal(err)
	}
	if err := s.LoadImage(1, []byte{1}, ImageLoadOptions{}); err != nil {
		t.Fatal(err)
	}
	waitLoaded(t, s, 1)

	if err := s.Apply(ClearCommand{Target: ClearTargetSprites}); err != nil {
		t.Fatal(err)
	}
	if len(s.defs) != 0 {
		t.Error("sprite clear did not empty definitions")
	}
	if len(s.images) != 1 {
		t.Error("sprite clear touched the image store")
	}

	if err := s.Apply(ClearCommand{Target: ClearTargetImages}); err != nil {
		t.Fatal(err)
	}
	if len(s.images) != 0 {
		t.Error("image clear did not empty the image store")
	}
}

type bogusCommand struct{}

func (bogusCommand) isCommand() {}

func TestApplyUnrecognizedCommand(t *testing.T) {
	s := NewStage(StageConfig{})
	if err := s.Apply(bogusCommand{}); err == nil {
		t.Error("expected an error for an unrecognized command type")
	}
}
