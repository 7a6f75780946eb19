package spritecache

// Command is the typed input variant consumed by Stage.Apply. Producers (the
// transport/parsing layer, which lives outside this package) decide the
// concrete command once at the boundary; nothing downstream re-sniffs fields.
type Command interface {
	isCommand()
}

// Point is a 2D position as carried by commands.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rotation is the rotation payload of a rotate-image command. Only the Z axis
// is meaningful for a 2D surface.
type Rotation struct {
	Z float64 `json:"z"` // radians
}

// DefineSpriteCommand creates or replaces a sprite definition. Exactly one of
// Pixels and ImageData is set: Pixels carries a raw brightness grid, ImageData
// carries encoded image bytes that are decoded asynchronously and quantized.
type DefineSpriteCommand struct {
	ID        int    `json:"id"`
	Pixels    []int  `json:"pixelData,omitempty"`
	ImageData []byte `json:"spriteData,omitempty"`
}

// DefineVirtualSpriteCommand creates or replaces a virtual sprite
// composition.
type DefineVirtualSpriteCommand struct {
	ID            int           `json:"id"`
	Layout        VirtualLayout `json:"layout"`
	BaseSpriteIDs []int         `json:"baseSpriteIds"`
}

// UpdateInstanceCommand fully replaces a sprite instance. Nil optional fields
// take their defaults: 0 for the numerics, true for Visible.
type UpdateInstanceCommand struct {
	ID           int      `json:"id"`
	DefinitionID int      `json:"definitionId"`
	X            *float64 `json:"x,omitempty"`
	Y            *float64 `json:"y,omitempty"`
	Rotation     *float64 `json:"rotation,omitempty"` // degrees, clockwise
	Visible      *bool    `json:"visible,omitempty"`
}

// LoadImageCommand begins an asynchronous image object load.
type LoadImageCommand struct {
	ID        int    `json:"id"`
	ImageData []byte `json:"imageData"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Filename  string `json:"filename,omitempty"`
}

// ShowImageCommand makes an image object visible at a position and scale.
type ShowImageCommand struct {
	ID       int   `json:"id"`
	Position Point `json:"position"`
	Scale    int   `json:"scale,omitempty"`
}

// HideImageCommand hides an image object.
type HideImageCommand struct {
	ID int `json:"id"`
}

// RotateImageCommand sets an image object's rotation.
type RotateImageCommand struct {
	ID       int      `json:"id"`
	Rotation Rotation `json:"rotation"`
}

// ClearTarget selects which stores a ClearCommand resets.
type ClearTarget uint8

const (
	ClearTargetAll ClearTarget = iota
	ClearTargetSprites
	ClearTargetImages
)

// ClearCommand resets the selected stores and marks them dirty.
type ClearCommand struct {
	Target ClearTarget `json:"target"`
}

func (DefineSpriteCommand) isCommand()        {}
func (DefineVirtualSpriteCommand) isCommand() {}
func (UpdateInstanceCommand) isCommand()      {}
func (LoadImageCommand) isCommand()           {}
func (ShowImageCommand) isCommand()           {}
func (HideImageCommand) isCommand()           {}
func (RotateImageCommand) isCommand()         {}
func (ClearCommand) isCommand()               {}

// Apply dispatches one command to the corresponding store operation. Errors
// are the synchronous failures of the underlying operation (validation,
// unknown handle, empty payload); asynchronous decode failures surface later
// through OnLoadError.
func (s *Stage) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case DefineSpriteCommand:
		if len(c.ImageData) > 0 {
			return s.loadSpriteData(c.ID, c.ImageData)
		}
		return s.DefineSprite(c.ID, c.Pixels)

	case DefineVirtualSpriteCommand:
		return s.DefineVirtualSprite(c.ID, c.Layout, c.BaseSpriteIDs)

	case UpdateInstanceCommand:
		u := InstanceUpdate{ID: c.ID, DefinitionID: c.DefinitionID, Visible: true}
		if c.X != nil {
			u.X = *c.X
		}
		if c.Y != nil {
			u.Y = *c.Y
		}
		if c.Rotation != nil {
			u.Rotation = *c.Rotation
		}
		if c.Visible != nil {
			u.Visible = *c.Visible
		}
		s.UpdateInstance(u)
		return nil

	case LoadImageCommand:
		return s.LoadImage(c.ID, c.ImageData, ImageLoadOptions{
			Width:    c.Width,
			Height:   c.Height,
			Filename: c.Filename,
		})

	case ShowImageCommand:
		return s.ShowImage(c.ID, c.Position.X, c.Position.Y, c.Scale)

	case HideImageCommand:
		return s.HideImage(c.ID)

	case RotateImageCommand:
		return s.RotateImage(c.ID, c.Rotation.Z)

	case ClearCommand:
		switch c.Target {
		case ClearTargetSprites:
			s.ClearSprites()
		case ClearTargetImages:
			s.ClearImages()
		default:
			s.ClearAll()
		}
		return nil
	}
	return &ValidationError{Field: "command", Reason: "unrecognized command type"}
}
