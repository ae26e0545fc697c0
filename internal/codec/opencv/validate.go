package opencv

import (
	"fmt"

	"gocv.io/x/gocv"
)

// MaxDimension is the largest width or height the backend will decode or
// encode.
const MaxDimension = 32768

func validateMat(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("%s: image is empty", operation)
	}
	if err := validateDimensions(mat.Cols(), mat.Rows(), operation); err != nil {
		return err
	}
	return validateMatType(mat.Type(), operation)
}

func validateDimensions(width, height int, operation string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%s: invalid dimensions %dx%d", operation, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%s: dimensions %dx%d exceed %d", operation, width, height, MaxDimension)
	}
	return nil
}

func validateMatType(matType gocv.MatType, operation string) error {
	switch matType {
	case gocv.MatTypeCV8UC1, gocv.MatTypeCV8UC3, gocv.MatTypeCV8UC4:
		return nil
	case gocv.MatTypeCV16UC1, gocv.MatTypeCV16UC3, gocv.MatTypeCV16UC4:
		return nil
	default:
		return fmt.Errorf("%s: unsupported pixel type %v", operation, matType)
	}
}
