// Package codeplug renders the CPS import tables.
package codeplug

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/asciiname"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/model"
)

// DefaultDMRID is written to the channel table when none is configured.
const DefaultDMRID = "1234567"

// TalkgroupHeader is the contact table header.
var TalkgroupHeader = []string{"No.", "Name", "ID", "Type"}

// ChannelHeader is the channel table header as exported by the DM-32 CPS.
var ChannelHeader = []string{
	"No.", "Channel Name", "Channel Type", "RX Frequency[MHz]", "TX Frequency[MHz]",
	"Power", "Band Width", "Scan List", "TX Admit", "Emergency System",
	"Squelch Level", "APRS Report Type", "Forbid TX", "APRS Receive",
	"Forbid Talkaround", "Auto Scan", "Lone Work", "Emergency Indicator",
	"Emergency ACK", "Analog APRS PTT Mode", "Digital APRS PTT Mode",
	"TX Contact", "RX Group List", "Color Code", "Time Slot", "Encryption",
	"Encryption ID", "APRS Report Channel", "Direct Dual Mode",
	"Private Confirm", "Short Data Confirm", "DMR ID", "CTC/DCS Decode",
	"CTC/DCS Encode", "Scramble", "RX Squelch Mode", "Signaling Type",
	"PTT ID", "VOX Function", "PTT ID Display",
}

// ZoneHeader is the zone table header.
var ZoneHeader = []string{"No.", "Zone Name", "Channel Members"}

// RXGroupListHeader is the receive group list table header.
var RXGroupListHeader = []string{"No.", "Group Name", "Contact Members"}

// MemberSeparator joins zone and group list members in one cell.
const MemberSeparator = "|"

// WriteTalkgroups writes the contact table.
func WriteTalkgroups(w io.Writer, tgs []model.Talkgroup) error {
	rows := make([][]string, 0, len(tgs))
	for i, tg := range tgs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			tg.Name,
			strconv.FormatUint(uint64(tg.ID), 10),
			tg.CallType.String(),
		})
	}
	return writeTable(w, "talkgroups", TalkgroupHeader, rows)
}

// ChannelOptions carries the per-radio values repeated on every channel row.
type ChannelOptions struct {
	DMRID string
}

// WriteChannels writes the channel table. Channels must already carry their
// final indexes.
func WriteChannels(w io.Writer, channels []model.Channel, opts ChannelOptions) error {
	dmrID := opts.DMRID
	if dmrID == "" {
		dmrID = DefaultDMRID
	}
	rows := make([][]string, 0, len(channels))
	for _, ch := range channels {
		rows = append(rows, channelRow(ch, dmrID))
	}
	return writeTable(w, "channels", ChannelHeader, rows)
}

func channelRow(ch model.Channel, dmrID string) []string {
	digital := ch.Type == model.Digital
	txAdmit, aprsType, aprsRx := "Allow TX", "Off", "0"
	if digital {
		txAdmit, aprsType, aprsRx = "Always", "Digital", "1"
	}
	contact := ch.Contact
	if contact == "" {
		contact = "None"
	}
	slot := ch.TimeSlot
	if slot == 0 {
		slot = 1
	}
	tone := model.NoTone
	if !digital {
		tone = ch.CTCSS
	}
	rxGroup := "None"
	if len(ch.RXContacts) > 0 {
		rxGroup = ch.Name
	}
	return []string{
		strconv.Itoa(ch.Index),
		ch.Name,
		string(ch.Type),
		ch.RX.String(),
		ch.TX.String(),
		string(ch.Power),
		string(ch.Bandwidth),
		"Scan List 1",
		txAdmit,
		"None",
		"3",
		aprsType,
		"0",
		aprsRx,
		"0", "0", "0", "0", "0", "0", "0",
		contact,
		rxGroup,
		strconv.Itoa(int(ch.ColorCode)),
		"Slot " + strconv.Itoa(int(slot)),
		"0",
		"None",
		"1",
		"0", "0", "0",
		dmrID,
		tone.String(),
		tone.String(),
		"None",
		"Carrier/CTC",
		"None",
		"OFF",
		"0",
		"0",
	}
}

// WriteRXGroupLists writes one receive group list per channel that carries
// RX contacts. Each list is named after its channel, so channel names must be
// final.
func WriteRXGroupLists(w io.Writer, channels []model.Channel) error {
	var rows [][]string
	for _, ch := range channels {
		if len(ch.RXContacts) == 0 {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(len(rows) + 1),
			ch.Name,
			strings.Join(ch.RXContacts, MemberSeparator),
		})
	}
	return writeTable(w, "rx_group_lists", RXGroupListHeader, rows)
}

// WriteZones writes the zone table.
func WriteZones(w io.Writer, zones []model.Zone) error {
	rows := make([][]string, 0, len(zones))
	for i, z := range zones {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			z.Name,
			strings.Join(z.Members, MemberSeparator),
		})
	}
	return writeTable(w, "zones", ZoneHeader, rows)
}

// writeTable checks every cell before the first byte is written so a rejected
// table leaves nothing behind.
func writeTable(w io.Writer, table string, header []string, rows [][]string) error {
	for r, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("%s row %d has %d columns, want %d", table, r+1, len(row), len(header))
		}
		for c, cell := range row {
			if !asciiname.IsPrintableASCII(cell) {
				return &EncodingError{Table: table, Row: r + 1, Column: header[c], Value: cell}
			}
		}
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", table, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s rows: %w", table, err)
	}
	return nil
}
