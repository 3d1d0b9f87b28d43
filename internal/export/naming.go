package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// StillPath returns the PNG path for one level. With an explicit output and
// several levels the level is inserted before the extension.
func StillPath(curve string, level int, output string, multi bool) string {
	if output == "" {
		return fmt.Sprintf("%s_level%d.png", curve, level)
	}
	if !multi {
		return output
	}
	ext := filepath.Ext(output)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s_level%d%s", strings.TrimSuffix(output, filepath.Ext(output)), level, ext)
}

// VideoPath returns the MP4 path: {curve}_level{N}.mp4 for one level,
// {curve}_levels_{a_b_c}.mp4 for a stitched export.
func VideoPath(curve string, levels []int, output string) string {
	if output != "" {
		return output
	}
	if len(levels) == 1 {
		return fmt.Sprintf("%s_level%d.mp4", curve, levels[0])
	}
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = strconv.Itoa(l)
	}
	return fmt.Sprintf("%s_levels_%s.mp4", curve, strings.Join(parts, "_"))
}

// FramesDir returns the directory for numbered PNG frames.
func FramesDir(curve string, levels []int, output string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(VideoPath(curve, levels, ""), ".mp4") + "_frames"
}
