package media

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"savora/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

var uploadDir = "./static/recipepic"

// UploadRecipeImage accepts a multipart image, stores the original and
// a 300px-wide thumbnail, and returns both URLs.
func UploadRecipeImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := filepath.Ext(handler.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		http.Error(w, "Unsupported file type", http.StatusBadRequest)
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		http.Error(w, "Unreadable image", http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		http.Error(w, "Unable to save file", http.StatusInternalServerError)
		return
	}

	id := utils.GetUUID()
	originalPath := filepath.Join(uploadDir, fmt.Sprintf("%s%s", id, ext))
	thumbPath := filepath.Join(uploadDir, fmt.Sprintf("%s_thumb%s", id, ext))

	if err := imaging.Save(img, originalPath); err != nil {
		http.Error(w, "Unable to save file", http.StatusInternalServerError)
		return
	}
	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		http.Error(w, "Unable to save thumbnail", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"imageUrl": "/static/recipepic/" + filepath.Base(originalPath),
		"thumbUrl": "/static/recipepic/" + filepath.Base(thumbPath),
	})
}
