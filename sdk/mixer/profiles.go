package mixer

import "github.com/FPtrevi/midicontrol/sdk/contracts"

// QuSeries describes the Allen & Heath Qu 5/6/7 family: NRPN mutes,
// Bank Select + Program Change scene recall, softkeys 1-12 on notes
// 0x30-0x3B. Network MIDI runs over TCP port 51325.
func QuSeries() *contracts.MixerProfile {
	return &contracts.MixerProfile{
		Name:            "Qu 5/6/7",
		Kind:            contracts.ProtocolMIDINRPN,
		MIDIChannel:     0,
		SoftkeyBaseNote: 0x30,
		MaxSoftkey:      12,
		MuteParamMSB:    0x00,
		MaxInputChannel: 32,
		MaxScene:        300,
		ProgramsPerBank: 128,
	}
}

// DM3 describes the Yamaha DM3 over OSC (UDP port 49900): fader-on style
// mutes and ssrecall_ex scene recall against scene list "scene_a". The
// DM3 has no MIDI softkeys.
func DM3() *contracts.MixerProfile {
	return &contracts.MixerProfile{
		Name:            "DM3",
		Kind:            contracts.ProtocolOSC,
		MaxInputChannel: 16,
		MaxScene:        100,
		OSCMutePattern:  "/yosc:req/set/MIXER:Current/InCh/Fader/On/%d/1",
		OSCSceneAddress: "/yosc:req/ssrecall_ex",
		OSCSceneList:    "scene_a",
	}
}
