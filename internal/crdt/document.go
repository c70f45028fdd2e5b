package crdt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Block представляет один блок коллаборативного документа.
// Конфликты на уровне блока разрешаются по правилу LWW (Last-Write-Wins):
// побеждает запись с большим Timestamp, при равенстве - с большим NodeID
// (лексикографически, для детерминизма на всех репликах).
type Block struct {
	ID        string `json:"id"`        // ID уникальный идентификатор блока внутри документа
	Pos       string `json:"pos"`       // Pos сортируемый ключ позиции блока в документе
	Text      string `json:"text"`      // Text содержимое блока
	NodeID    string `json:"node_id"`   // NodeID реплика, создавшая эту версию блока
	Timestamp int64  `json:"timestamp"` // Timestamp Lamport timestamp версии блока
	Deleted   bool   `json:"deleted"`   // Deleted tombstone блока (физически блок остается)
}

// IsNewerThan сравнивает две версии блока по правилам LWW.
// Возвращает true, если текущая версия должна победить other.
func (b *Block) IsNewerThan(other *Block) bool {
	if b.Timestamp != other.Timestamp {
		return b.Timestamp > other.Timestamp
	}
	// Timestamps равны - сравниваем NodeID для детерминизма
	return b.NodeID > other.NodeID
}

// Clone создает копию блока.
func (b *Block) Clone() *Block {
	clone := *b
	return &clone
}

// RootBlockID идентификатор корневого блока, в который сеется
// plain-text заметка при первом создании реплики.
const RootBlockID = "body"

// Document представляет CRDT-реплику одной заметки: множество блоков
// с LWW-разрешением конфликтов. Слияние реплик коммутативно,
// ассоциативно и идемпотентно, поэтому порядок доставки дельт не важен.
type Document struct {
	blocks map[string]*Block // map[blockID]block, включая tombstones
	noteID string
	mu     sync.RWMutex
}

// NewDocument создает пустую реплику документа для заметки.
func NewDocument(noteID string) *Document {
	return &Document{
		noteID: noteID,
		blocks: make(map[string]*Block),
	}
}

// NoteID возвращает идентификатор заметки, которой принадлежит реплика.
func (d *Document) NoteID() string {
	return d.noteID
}

// Seed заполняет пустую реплику plain-text снапшотом заметки.
// Миграционный путь первого запуска: заметка, никогда не имевшая реплики,
// становится документом из одного корневого блока.
func (d *Document) Seed(text string, timestamp int64, nodeID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.blocks[RootBlockID] = &Block{
		ID:        RootBlockID,
		Pos:       "0",
		Text:      text,
		Timestamp: timestamp,
		NodeID:    nodeID,
	}
}

// Apply применяет версии блоков к реплике по правилам LWW.
// Возвращает блоки, которые реально изменили состояние реплики -
// именно они образуют исходящую дельту. Повторное применение
// той же дельты не меняет состояние (идемпотентность).
func (d *Document) Apply(blocks ...Block) []Block {
	d.mu.Lock()
	defer d.mu.Unlock()

	var accepted []Block

	for i := range blocks {
		incoming := blocks[i]

		existing, ok := d.blocks[incoming.ID]
		if ok && !incoming.IsNewerThan(existing) {
			// Существующая версия новее либо та же - пропускаем
			continue
		}

		d.blocks[incoming.ID] = incoming.Clone()
		accepted = append(accepted, incoming)
	}

	return accepted
}

// Merge применяет сериализованную дельту (update bytes) другой реплики.
// Возвращает максимальный timestamp дельты для продвижения часов Лампорта
// и флаг, изменила ли дельта состояние.
func (d *Document) Merge(update []byte) (int64, bool, error) {
	blocks, err := DecodeUpdate(update)
	if err != nil {
		return 0, false, err
	}

	var maxTS int64
	for i := range blocks {
		if blocks[i].Timestamp > maxTS {
			maxTS = blocks[i].Timestamp
		}
	}

	accepted := d.Apply(blocks...)
	return maxTS, len(accepted) > 0, nil
}

// Blocks возвращает снапшот всех блоков реплики (включая tombstones),
// отсортированный по позиции. Изменение результата не влияет на реплику.
func (d *Document) Blocks() []Block {
	d.mu.RLock()
	defer d.mu.RUnlock()

	blocks := make([]Block, 0, len(d.blocks))
	for _, b := range d.blocks {
		blocks = append(blocks, *b)
	}

	sortBlocks(blocks)
	return blocks
}

// Materialize собирает текущий текст документа: живые блоки
// в порядке позиций, соединенные переводом строки.
func (d *Document) Materialize() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	blocks := make([]Block, 0, len(d.blocks))
	for _, b := range d.blocks {
		if !b.Deleted {
			blocks = append(blocks, *b)
		}
	}

	sortBlocks(blocks)

	parts := make([]string, 0, len(blocks))
	for i := range blocks {
		parts = append(parts, blocks[i].Text)
	}

	return strings.Join(parts, "\n")
}

// MaxTimestamp возвращает максимальный timestamp среди блоков реплики.
// Используется для восстановления часов Лампорта после перезапуска.
func (d *Document) MaxTimestamp() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var maxTS int64
	for _, b := range d.blocks {
		if b.Timestamp > maxTS {
			maxTS = b.Timestamp
		}
	}
	return maxTS
}

// Empty возвращает true если в реплике нет ни одного блока.
func (d *Document) Empty() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.blocks) == 0
}

// EncodeState сериализует полное состояние реплики для durable-хранилища.
// Состояние - это просто дельта, содержащая все блоки, поэтому
// восстановление реплики сводится к Merge на пустом документе.
func (d *Document) EncodeState() ([]byte, error) {
	return EncodeUpdate(d.Blocks())
}

// DecodeState восстанавливает реплику из сериализованного состояния.
func DecodeState(noteID string, state []byte) (*Document, error) {
	doc := NewDocument(noteID)
	if len(state) == 0 {
		return doc, nil
	}

	if _, _, err := doc.Merge(state); err != nil {
		return nil, fmt.Errorf("failed to decode document state: %w", err)
	}

	return doc, nil
}

// EncodeUpdate сериализует набор версий блоков в бинарную дельту.
func EncodeUpdate(blocks []Block) ([]byte, error) {
	data, err := json.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update: %w", err)
	}
	return data, nil
}

// DecodeUpdate десериализует бинарную дельту в набор версий блоков.
func DecodeUpdate(update []byte) ([]Block, error) {
	var blocks []Block
	if err := json.Unmarshal(update, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode update: %w", err)
	}
	return blocks, nil
}

// sortBlocks сортирует блоки по ключу позиции, затем по ID.
func sortBlocks(blocks []Block) {
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].Pos != blocks[j].Pos {
			return blocks[i].Pos < blocks[j].Pos
		}
		return blocks[i].ID < blocks[j].ID
	})
}
