//go:build !nogpu

package main

// Register the GPU accelerator for raster rendering.
import _ "github.com/gogpu/gg/gpu"
