package tiles

import "fmt"

// Item identifies an inventory item.
type Item uint8

const (
	Stick Item = iota
	Sword

	itemCount
)

// ItemClass groups items by use.
type ItemClass uint8

const (
	Weapon ItemClass = iota
	Tool
	Resource
)

// ItemProperties are the static attributes of an item.
type ItemProperties struct {
	Name            string
	AtlasX          int
	AtlasY          int
	AnimationFrames int
	Stackable       bool
	Class           ItemClass
}

var items = [itemCount]ItemProperties{
	Stick: {Name: "Stick", AtlasX: 4, AtlasY: 1, AnimationFrames: 1, Class: Resource},
	Sword: {Name: "Sword", AtlasX: 4, AtlasY: 2, AnimationFrames: 1, Class: Weapon},
}

// Valid reports whether it is part of the item catalog.
func (it Item) Valid() bool { return it < itemCount }

// ItemProps returns the catalog record for it.
func ItemProps(it Item) ItemProperties {
	if !it.Valid() {
		return ItemProperties{}
	}
	return items[it]
}

func (it Item) String() string {
	if !it.Valid() {
		return fmt.Sprintf("Item(%d)", uint8(it))
	}
	return items[it].Name
}
