package hal

import (
	"errors"

	"github.com/ncruces/zenity"
)

type hostDialogs struct{}

var imageFilters = zenity.FileFilters{
	{Name: "Images", Patterns: []string{"*.png", "*.jpg", "*.jpeg"}, CaseFold: true},
	{Name: "PNG", Patterns: []string{"*.png"}, CaseFold: true},
	{Name: "JPEG", Patterns: []string{"*.jpg", "*.jpeg"}, CaseFold: true},
}

func (hostDialogs) OpenImage() (string, error) {
	path, err := zenity.SelectFile(imageFilters)
	return path, mapDialogErr(err)
}

func (hostDialogs) SaveImage(name string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "PNG", Patterns: []string{"*.png"}, CaseFold: true}},
	)
	return path, mapDialogErr(err)
}

func (hostDialogs) PickFolder() (string, error) {
	path, err := zenity.SelectFile(zenity.Directory(), zenity.Filename("./"))
	return path, mapDialogErr(err)
}

func mapDialogErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, zenity.ErrCanceled) {
		return ErrCanceled
	}
	return err
}
