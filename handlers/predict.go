package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-sentinel/classifier"
)

// PredictWildfire handles POST /predict/wildfire: one multipart image in,
// one {prediction, confidence} verdict out.
func PredictWildfire(c *gin.Context, clf classifier.Classifier) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No file uploaded."})
		return
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "File must be an image."})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not read uploaded file."})
		return
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Could not read uploaded file."})
		return
	}

	result, err := clf.Predict(c.Request.Context(), fh.Filename, image)
	if err != nil {
		log.Printf("Error classifying image %s: %v", fh.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error processing image: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
