package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyDownload           = "download"
	KeyCancel             = "cancel"
	KeyOpenFolder         = "open_folder"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDownloadSettings   = "download_settings"
	KeyInterfaceSettings  = "interface_settings"
	KeyDownloadDirectory  = "download_directory"
	KeyQualityPreset      = "quality_preset"
	KeyMergeFormat        = "merge_format"
	KeyFilenameTemplate   = "filename_template"
	KeyFFmpegPath         = "ffmpeg_path"
	KeyExpandPlaylists    = "expand_playlists"
	KeyOpenFolderOnFinish = "open_folder_on_finish"
	KeySave               = "save"
	KeyBrowse             = "browse"
	KeyEnterURLs          = "enter_urls"
	KeySettingsSaved      = "settings_saved"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyBatchInProgress    = "batch_in_progress"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyErrorCreatingDir   = "error_creating_dir"
	KeyLowDiskSpace       = "low_disk_space"
	KeyReady              = "ready"
	KeyStarting           = "starting"
	KeyCancelling         = "cancelling"
	KeyCancelled          = "cancelled"
	KeyAllDone            = "all_done"
	KeySavedTo            = "saved_to"
	KeyLog                = "log"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "YT Batch Downloader",
		KeyDownload:           "Download",
		KeyCancel:             "Cancel",
		KeyOpenFolder:         "Open folder",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDownloadSettings:   "Download Settings",
		KeyInterfaceSettings:  "Interface Settings",
		KeyDownloadDirectory:  "Download Directory",
		KeyQualityPreset:      "Quality Preset",
		KeyMergeFormat:        "Merge Format",
		KeyFilenameTemplate:   "Filename Template",
		KeyFFmpegPath:         "FFmpeg Path (optional)",
		KeyExpandPlaylists:    "Expand playlist links into videos",
		KeyOpenFolderOnFinish: "Open folder when done",
		KeySave:               "Save",
		KeyBrowse:             "Browse",
		KeyEnterURLs:          "Paste video URLs, one per line",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyPleaseEnterURL:     "Please enter at least one URL",
		KeyBatchInProgress:    "A batch is already running",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyErrorCreatingDir:   "Cannot create download directory",
		KeyLowDiskSpace:       "Warning: low disk space",
		KeyReady:              "Ready",
		KeyStarting:           "Starting %d downloads...",
		KeyCancelling:         "Cancelling after the current download...",
		KeyCancelled:          "Cancelled",
		KeyAllDone:            "All done!",
		KeySavedTo:            "Saved to: %s",
		KeyLog:                "Log",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "YT Пакетный загрузчик",
		KeyDownload:           "Скачать",
		KeyCancel:             "Отмена",
		KeyOpenFolder:         "Открыть папку",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDownloadSettings:   "Настройки загрузки",
		KeyInterfaceSettings:  "Настройки интерфейса",
		KeyDownloadDirectory:  "Папка загрузки",
		KeyQualityPreset:      "Предустановка качества",
		KeyMergeFormat:        "Формат объединения",
		KeyFilenameTemplate:   "Шаблон имени файла",
		KeyFFmpegPath:         "Путь к FFmpeg (необязательно)",
		KeyExpandPlaylists:    "Раскрывать плейлисты в видео",
		KeyOpenFolderOnFinish: "Открыть папку по завершении",
		KeySave:               "Сохранить",
		KeyBrowse:             "Обзор",
		KeyEnterURLs:          "Вставьте URL видео, по одному на строку",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyPleaseEnterURL:     "Пожалуйста, введите хотя бы один URL",
		KeyBatchInProgress:    "Загрузка уже выполняется",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyErrorCreatingDir:   "Не удалось создать папку загрузки",
		KeyLowDiskSpace:       "Внимание: мало места на диске",
		KeyReady:              "Готово к работе",
		KeyStarting:           "Запуск загрузок: %d...",
		KeyCancelling:         "Отмена после текущей загрузки...",
		KeyCancelled:          "Отменено",
		KeyAllDone:            "Всё готово!",
		KeySavedTo:            "Сохранено в: %s",
		KeyLog:                "Журнал",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "YT Batch Downloader",
		KeyDownload:           "Baixar",
		KeyCancel:             "Cancelar",
		KeyOpenFolder:         "Abrir pasta",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDownloadSettings:   "Configurações de Download",
		KeyInterfaceSettings:  "Configurações de Interface",
		KeyDownloadDirectory:  "Diretório de Download",
		KeyQualityPreset:      "Predefinição de Qualidade",
		KeyMergeFormat:        "Formato de Mesclagem",
		KeyFilenameTemplate:   "Modelo de Nome de Arquivo",
		KeyFFmpegPath:         "Caminho do FFmpeg (opcional)",
		KeyExpandPlaylists:    "Expandir playlists em vídeos",
		KeyOpenFolderOnFinish: "Abrir pasta ao concluir",
		KeySave:               "Salvar",
		KeyBrowse:             "Navegar",
		KeyEnterURLs:          "Cole URLs de vídeo, uma por linha",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyPleaseEnterURL:     "Por favor, digite pelo menos uma URL",
		KeyBatchInProgress:    "Um lote já está em execução",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeyErrorCreatingDir:   "Não foi possível criar o diretório de download",
		KeyLowDiskSpace:       "Aviso: pouco espaço em disco",
		KeyReady:              "Pronto",
		KeyStarting:           "Iniciando %d downloads...",
		KeyCancelling:         "Cancelando após o download atual...",
		KeyCancelled:          "Cancelado",
		KeyAllDone:            "Tudo pronto!",
		KeySavedTo:            "Salvo em: %s",
		KeyLog:                "Registro",
	}
}
