// Package scenes holds the sample pictures drawn by sketchdemo.
package scenes

import (
	"slices"
	"strings"

	"github.com/gogpu/sketch"
)

var scenes = map[string]func(c *sketch.Canvas){
	"basic": Basic,
	"house": House,
	"lines": Lines,
	"demo":  Demo,
}

// Lookup returns the scene registered under name.
func Lookup(name string) (func(c *sketch.Canvas), bool) {
	draw, ok := scenes[name]
	return draw, ok
}

// Names returns the scene names, sorted and comma separated.
func Names() string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// Basic shows one of every shape.
func Basic(c *sketch.Canvas) {
	c.Color("red")
	c.Rectangle(10, 10, 60, 40)

	c.Color("green")
	c.Outline("blue")
	c.Stroke(3)
	c.Circle(120, 80, 30)

	c.Color("yellow")
	c.Triangle(50, 200, 150, 200, 100, 120)

	c.Color("white")
	c.Stroke(3)
	c.Line(0, 0, 319, 239)

	c.Color("cyan")
	c.RoundedRect(0, 100, 80, 40)

	c.Color("magenta")
	c.CircleOutline(250, 180, 30)
}

// Lines fans lines out from the top corners.
func Lines(c *sketch.Canvas) {
	c.Color("green")
	for x := 0; x < 320; x += 10 {
		c.Line(x, 0, 319, 239)
	}
	c.Color("red")
	for x := 0; x < 320; x += 10 {
		c.Line(319, 0, x, 239)
	}
}

// House draws a house with a tree and a fence.
func House(c *sketch.Canvas) {
	// walls and roof
	c.Color("yellow")
	c.Outline("black")
	c.Stroke(2)
	c.Rectangle(60, 120, 120, 80)
	c.Color("red")
	c.Triangle(60, 120, 180, 120, 120, 60)

	// chimney with smoke
	c.Color("brown")
	c.Rectangle(150, 80, 20, 40)
	c.Color("gray")
	for i := range 5 {
		c.Circle(160, 60-i*15, 8)
	}

	c.Color("brown")
	c.Rectangle(100, 150, 30, 50)
	c.Color("cyan")
	c.Rectangle(70, 130, 20, 20)
	c.Rectangle(150, 130, 20, 20)

	// roof tiles
	c.Color("black")
	for x := 65; x < 175; x += 10 {
		c.Line(x, 120, 120, 65)
	}

	// pathway
	c.Color("gray")
	for i := range 6 {
		c.Rectangle(110-i*5, 200+i*7, 40+i*10, 7)
	}

	// tree
	c.Color("brown")
	c.Rectangle(220, 150, 20, 50)
	c.Color("green")
	c.Circle(230, 140, 20)
	c.Circle(210, 150, 20)
	c.Circle(250, 150, 20)
	c.Circle(230, 120, 20)

	// fence
	c.Color("brown")
	for x := 0; x < 320; x += 20 {
		c.Rectangle(x, 210, 10, 30)
	}
	c.Rectangle(0, 215, 320, 5)
	c.Rectangle(0, 230, 320, 5)
}

// Demo draws the basic shapes, clears the screen and draws the house.
func Demo(c *sketch.Canvas) {
	Basic(c)
	c.ClearScene()
	House(c)
}
