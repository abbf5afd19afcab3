package utils

import (
	"os"
	"path/filepath"
	"strings"
)

func GetFilename(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OpenFile creates <outputPath><fileSuffix>/<scenario>.csv when makeDir is set,
// and <outputPath><scenario>_<fileSuffix>.csv otherwise.
func OpenFile(makeDir bool, outputPath string, fileSuffix, scenario string) (*os.File, error) {
	if makeDir && fileSuffix != "" && fileSuffix != "." {
		if err := os.MkdirAll(outputPath+fileSuffix, 0750); err != nil {
			return nil, err
		}
		return os.Create(outputPath + fileSuffix + "/" + scenario + ".csv")
	}
	return os.Create(outputPath + scenario + "_" + fileSuffix + ".csv")
}

// OutputPath normalizes a directory name to end with a separator, creating the directory if needed.
func OutputPath(dir string) (string, error) {
	if dir == "" || dir == "." {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return dir, nil
}
