package contenthdl

import (
	"fmt"

	basehdl "adcraft/internal/api/base/handler"
	contentmodels "adcraft/internal/api/content/models"
	contentsvc "adcraft/internal/api/content/service"
)

// Artifact là record bất biến: tạo mới chỉ đi qua pipeline generate,
// nên handler dùng chính model làm placeholder cho Create/Update input
// (các route insert/update không được đăng ký — xem ArtifactConfig).

// CaptionHandler xử lý các request đọc/xóa caption
type CaptionHandler struct {
	*basehdl.BaseHandler[contentmodels.Caption, contentmodels.Caption, contentmodels.Caption]
	CaptionService *contentsvc.CaptionService
}

// NewCaptionHandler tạo mới CaptionHandler
func NewCaptionHandler() (*CaptionHandler, error) {
	captionService, err := contentsvc.NewCaptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create caption service: %v", err)
	}
	hdl := &CaptionHandler{CaptionService: captionService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Caption, contentmodels.Caption, contentmodels.Caption](captionService.BaseServiceMongoImpl)
	return hdl, nil
}

// ScriptHandler xử lý các request đọc/xóa script
type ScriptHandler struct {
	*basehdl.BaseHandler[contentmodels.Script, contentmodels.Script, contentmodels.Script]
	ScriptService *contentsvc.ScriptService
}

// NewScriptHandler tạo mới ScriptHandler
func NewScriptHandler() (*ScriptHandler, error) {
	scriptService, err := contentsvc.NewScriptService()
	if err != nil {
		return nil, fmt.Errorf("failed to create script service: %v", err)
	}
	hdl := &ScriptHandler{ScriptService: scriptService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Script, contentmodels.Script, contentmodels.Script](scriptService.BaseServiceMongoImpl)
	return hdl, nil
}

// ImageHandler xử lý các request đọc/xóa ảnh
type ImageHandler struct {
	*basehdl.BaseHandler[contentmodels.Image, contentmodels.Image, contentmodels.Image]
	ImageService *contentsvc.ImageService
}

// NewImageHandler tạo mới ImageHandler
func NewImageHandler() (*ImageHandler, error) {
	imageService, err := contentsvc.NewImageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create image service: %v", err)
	}
	hdl := &ImageHandler{ImageService: imageService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Image, contentmodels.Image, contentmodels.Image](imageService.BaseServiceMongoImpl)
	return hdl, nil
}

// VideoHandler xử lý các request đọc/xóa video
type VideoHandler struct {
	*basehdl.BaseHandler[contentmodels.Video, contentmodels.Video, contentmodels.Video]
	VideoService *contentsvc.VideoService
}

// NewVideoHandler tạo mới VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := contentsvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	hdl := &VideoHandler{VideoService: videoService}
	hdl.BaseHandler = basehdl.NewBaseHandler[contentmodels.Video, contentmodels.Video, contentmodels.Video](videoService.BaseServiceMongoImpl)
	return hdl, nil
}
